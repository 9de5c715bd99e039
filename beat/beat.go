package beat

// Callback is invoked by a beat when it is time to flush pending entries
// into the target context.
type Callback func()

// Beat decides when queued entries are flushed to the target context.
// Request signals that pending work exists; the beat invokes its flush
// callback either inline (SyncBeat) or on the target scheduler (AsyncBeat),
// skipping the callback entirely if the owner box reports destruction.
type Beat interface {
	Request()
}

// Factory constructs a beat bound to an owner box and a flush callback.
// The queue owns beat construction so that the callback can close over the
// queue before the beat can fire.
type Factory func(box *OwnerBox, callback Callback) Beat

// Scheduler runs callbacks on the target context's own goroutine, at its
// next opportunity. Post never blocks on the callback's execution.
type Scheduler interface {
	Post(fn func())
}

// SyncFactory returns a Factory producing synchronous beats.
func SyncFactory() Factory {
	return func(box *OwnerBox, callback Callback) Beat {
		return NewSyncBeat(box, callback)
	}
}

// AsyncFactory returns a Factory producing asynchronous beats bound to the
// given target scheduler.
func AsyncFactory(scheduler Scheduler) Factory {
	return func(box *OwnerBox, callback Callback) Beat {
		return NewAsyncBeat(box, scheduler, callback)
	}
}
