package model

import "errors"

var (
	// ErrUnsupportedValue is returned when an extra field is not a JSON scalar.
	ErrUnsupportedValue = errors.New("unsupported extra field value")
	// ErrInvalidPlayer is returned when a record lacks a required attribute.
	ErrInvalidPlayer = errors.New("invalid player")
)
