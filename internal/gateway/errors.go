package gateway

import "errors"

// ErrDataUnavailable wraps every failure to produce a leaderboard.
var ErrDataUnavailable = errors.New("leaderboard data unavailable")
