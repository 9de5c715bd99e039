package beat

import "errors"

// Sentinel errors for the beat package.
var (
	// ErrLoopRunning is returned when Start is called on a running loop.
	ErrLoopRunning = errors.New("run loop is already running")

	// ErrLoopNotRunning is returned when Stop is called on a loop that is not running.
	ErrLoopNotRunning = errors.New("run loop is not running")

	// ErrLoopStopped is returned when Start is called on a loop that has been stopped.
	// A stopped loop cannot be restarted.
	ErrLoopStopped = errors.New("run loop has been stopped")
)
