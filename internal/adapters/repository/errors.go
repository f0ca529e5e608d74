package repository

import "errors"

// ErrNotImplemented marks write-back operations reserved for a storage backend.
var ErrNotImplemented = errors.New("not implemented")
