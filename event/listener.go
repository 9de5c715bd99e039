package event

// Listener receives a side-channel notification for every dispatched event.
// Notification happens synchronously on the producer goroutine, before the
// event is queued for delivery, so listeners must be fast and non-blocking.
type Listener interface {
	// Wants reports whether this listener is interested in the event.
	// Listeners that return false are skipped for that dispatch.
	Wants(ev RawEvent) bool

	// Notify delivers the event to the listener.
	Notify(ev RawEvent)
}

// funcListener adapts a plain function to the Listener interface.
// It is interested in every event.
type funcListener struct {
	fn func(ev RawEvent)
}

// ListenerFunc wraps fn in a Listener that wants every event.
// Each call returns a distinct handle, so the result must be retained
// if the listener is to be removed later.
func ListenerFunc(fn func(ev RawEvent)) Listener {
	return &funcListener{fn: fn}
}

// Wants implements Listener. It always returns true.
func (l *funcListener) Wants(RawEvent) bool {
	return true
}

// Notify implements Listener.
func (l *funcListener) Notify(ev RawEvent) {
	l.fn(ev)
}
