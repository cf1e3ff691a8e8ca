package models

import "errors"

var (
	// ErrInvalidTransition reports a driver or rider state-machine call
	// that the event sequencing should have made impossible.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnknownEventType reports a scenario directive the loader does
	// not recognize.
	ErrUnknownEventType = errors.New("unknown event type")
)
