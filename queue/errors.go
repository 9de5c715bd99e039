package queue

import "errors"

// Sentinel errors for the queue package.
var (
	// ErrNilSink is returned when a processor is created without a sink.
	ErrNilSink = errors.New("sink cannot be nil")

	// ErrNilProcessor is returned when a queue is created without a processor.
	ErrNilProcessor = errors.New("processor cannot be nil")

	// ErrNilBeatFactory is returned when a queue is created without a beat factory.
	ErrNilBeatFactory = errors.New("beat factory cannot be nil")

	// ErrNilOwnerBox is returned when a queue is created without an owner box.
	ErrNilOwnerBox = errors.New("owner box cannot be nil")
)
