package service

import "errors"

var (
	// ErrOffline is returned only by an explicit user-triggered force sync
	// attempted without connectivity. Automatic triggers never raise it;
	// they silently skip the run instead.
	ErrOffline = errors.New("device is offline")

	// ErrUnknownOperation is returned when a queued mutation carries an
	// operation kind the engine cannot dispatch.
	ErrUnknownOperation = errors.New("unknown operation kind")
)
