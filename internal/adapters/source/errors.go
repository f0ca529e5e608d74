package source

import "errors"

var (
	// ErrStatus is returned when the remote source answers with a non-2xx status.
	ErrStatus = errors.New("unexpected source status")
	// ErrMalformed is returned when a document cannot be decoded into records.
	ErrMalformed = errors.New("malformed source document")
	// ErrInvalidDescriptor is returned for a source URL that cannot be fetched.
	ErrInvalidDescriptor = errors.New("invalid source descriptor")
)
