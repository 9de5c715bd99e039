// Package beat provides the scheduling primitives that decide when queued
// entries are flushed into the target context.
//
// A Beat exposes a single Request capability meaning "pending work exists;
// flush when appropriate". Two variants exist, selected by configuration at
// construction time:
//
//   - SyncBeat invokes the flush callback immediately, inline on the calling
//     goroutine. Used when producer and target share an execution context or
//     when immediate delivery is required.
//   - AsyncBeat schedules the flush callback onto the target context's own
//     Scheduler. Arming is idempotent: any number of Requests before the
//     scheduled callback fires coalesce into a single flush.
//
// Both variants resolve an OwnerBox before invoking the callback. The owner
// box is a shared/weak ownership split guarding against use of a destroyed
// owner from another goroutine: resolution failure means the owner is gone
// and the flush becomes a silent no-op.
//
// Loop is a concrete Scheduler implementation: a serial run loop on a single
// goroutine, optionally driven by frame ticks from a mockable clock.
package beat
