// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

package validators

import "errors"

// Sentinel validation errors. Handlers map them to HTTP 400 responses.
var (
	ErrUnsupportedType    = errors.New("unsupported type for validation")
	ErrUnknownField       = errors.New("unknown validation field")
	ErrInvalidRecordType  = errors.New("invalid record type")
	ErrMissingRecordID    = errors.New("record id is required")
	ErrMissingOwnerScope  = errors.New("owner scope is required")
	ErrInvalidPayload     = errors.New("payload is not valid for the record type")
	ErrInvalidOperation   = errors.New("invalid operation kind")
	ErrMissingMutationID  = errors.New("mutation id is required")
	ErrMissingEnqueuedAt  = errors.New("enqueue timestamp is required")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrMissingPayloadName = errors.New("name is required")
)
