package adapter

import "errors"

var (
	// ErrRemoteOperation marks any remote API failure that has no more
	// specific sentinel. Callers that only care about "the remote write did
	// not happen" match on this.
	ErrRemoteOperation = errors.New("remote operation failed")

	// ErrNotFound is returned when the remote store has no record with the
	// requested id.
	ErrNotFound = errors.New("remote record not found")

	// ErrOwnerScopeRequired is returned when the server rejects a request
	// for lacking the owner scope header.
	ErrOwnerScopeRequired = errors.New("owner scope required")
)
