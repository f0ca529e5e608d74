package service

import "errors"

// ErrPlayerNotFound is returned when an id is not on the current leaderboard.
var ErrPlayerNotFound = errors.New("player not found")
