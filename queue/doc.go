// Package queue buffers pending events and state updates and flushes them
// into the target context when its beat fires.
//
// The Queue owns two ordered buffers (raw events and state updates), a
// deduplication index for unique events, and a single beat built through a
// beat.Factory so the beat's flush callback is bound to the queue before the
// beat can fire. Enqueues from any number of producer goroutines are guarded
// by one mutex; flushes swap the buffers out under that mutex and deliver
// outside it, so entries arriving during a flush wait for the next beat
// cycle and the delivery sink never observes a partially drained buffer.
//
// Unique events follow a replace-in-place rule: at most one pending entry
// per (type, target) pair, with a later enqueue overwriting the pending
// payload at its original queue position. If the index and the buffer ever
// disagree, the queue fails closed by appending - delivering a stale
// duplicate is preferable to dropping a payload.
//
// The Processor is the pure delivery half: it hands a flushed batch to the
// Sink strictly in order, state updates first, with no threading concerns of
// its own.
package queue
