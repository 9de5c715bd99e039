package event

import "errors"

// Sentinel errors for the event package.
var (
	// ErrNilListener is returned when a nil listener is registered.
	ErrNilListener = errors.New("listener cannot be nil")
)
