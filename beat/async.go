package beat

import "sync/atomic"

// AsyncBeat schedules flushes onto the target context's scheduler. Arming is
// idempotent: once a flush is scheduled, further Requests are no-ops until
// the scheduled callback fires, so bursts of enqueues coalesce into a single
// flush on the target goroutine.
type AsyncBeat struct {
	box       *OwnerBox
	scheduler Scheduler
	callback  Callback
	armed     atomic.Bool
}

// NewAsyncBeat creates an asynchronous beat bound to the target scheduler.
func NewAsyncBeat(box *OwnerBox, scheduler Scheduler, callback Callback) *AsyncBeat {
	return &AsyncBeat{
		box:       box,
		scheduler: scheduler,
		callback:  callback,
	}
}

// Request arms the beat if it is not already armed. The flush callback runs
// on the scheduler's goroutine at its next opportunity; the owner box is
// checked at fire time, not at request time, so a teardown between the two
// turns the flush into a no-op.
func (b *AsyncBeat) Request() {
	if !b.armed.CompareAndSwap(false, true) {
		return
	}
	b.scheduler.Post(b.fire)
}

// fire disarms the beat and invokes the callback if the owner is alive.
// Disarming happens before the callback so that entries enqueued during a
// flush re-arm the beat for the next cycle.
func (b *AsyncBeat) fire() {
	b.armed.Store(false)
	if _, ok := b.box.Resolve(); !ok {
		return
	}
	b.callback()
}
