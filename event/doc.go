// Package event defines the data model for the cross-thread event delivery
// engine: raw events, state updates, and the listener side channel.
//
// Events originate on a producer goroutine and are ultimately applied on a
// target goroutine (typically a run loop owned by the consumer). This package
// is purely the data model and the listener registry; scheduling lives in
// package beat, buffering in package queue, and the public entry point in
// package dispatch.
//
// # Events and state updates
//
// A RawEvent is an opaque payload tagged with a Type and a Target identifying
// the logical element it concerns. Events are immutable once constructed and
// have a single owner at any time: the producer until enqueued, the queue
// until flushed, the target context during delivery.
//
// A StateUpdate represents a cumulative state transition against a target.
// State updates travel a separate delivery channel: they are never
// deduplicated and never notify listeners, because every transition matters.
//
// # Listeners
//
// Listeners form a side channel parallel to the primary delivery path. They
// are notified synchronously on the producer goroutine, before the event is
// queued, and must therefore be fast and non-blocking. Listeners are
// registered and removed by handle identity; implementations should be
// pointer types.
package event
