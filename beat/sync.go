package beat

// SyncBeat flushes inline: Request invokes the callback immediately on the
// calling goroutine. Used when the producer and target share an execution
// context or when immediate delivery is required regardless of target
// scheduling (e.g., during synchronous measurement).
type SyncBeat struct {
	box      *OwnerBox
	callback Callback
}

// NewSyncBeat creates a synchronous beat.
func NewSyncBeat(box *OwnerBox, callback Callback) *SyncBeat {
	return &SyncBeat{
		box:      box,
		callback: callback,
	}
}

// Request invokes the flush callback inline, unless the owner is gone.
func (b *SyncBeat) Request() {
	if _, ok := b.box.Resolve(); !ok {
		return
	}
	b.callback()
}
