package seniority

import "errors"

// Sentinel kinds for classification errors.
var (
	ErrInvalidScore = errors.New("invalid score")
	ErrUnknownLevel = errors.New("unknown seniority level")
)
