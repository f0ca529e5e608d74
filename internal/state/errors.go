package state

import "errors"

// ErrUnknownSlot is returned when subscribing to a slot name that does not exist.
var ErrUnknownSlot = errors.New("unknown state slot")
