// Package dispatch is the public entry point of the cross-thread event
// delivery engine. Producers submit events and state updates to a Dispatcher;
// the dispatcher's queue and beat deliver them, ordered and deduplicated, on
// the target context.
//
// # Architecture
//
//	producer goroutine(s)                      target goroutine
//	─────────────────────                      ────────────────
//	DispatchEvent ──┐
//	DispatchUnique ─┼─▶ listeners (sync) ─▶ Queue ─▶ Beat ─▶ Flush ─▶ Sink
//	DispatchState ──┘        │                         │
//	                 ListenerContainer          OwnerBox check
//	                 (side channel)             (resolve-or-noop)
//
// DispatchEvent and DispatchUniqueEvent notify every registered listener
// synchronously on the calling goroutine, then enqueue the event for
// delivery. DispatchUniqueEvent additionally guarantees at most one pending
// entry per (type, target) pair, overwriting the pending payload in place.
// DispatchStateUpdate travels a separate path with no deduplication and no
// listener notification.
//
// # Teardown
//
// Close destroys the dispatcher's owner box. A beat callback that was
// already scheduled finds the owner gone and skips the flush; dispatch calls
// after Close are silently dropped and counted in Stats. Neither case is an
// error - it is the expected shutdown path.
//
// External collaborators that must not extend the dispatcher's lifetime hold
// a Weak handle and resolve it at every call site; see package bridge for
// the canonical consumer pattern.
package dispatch
