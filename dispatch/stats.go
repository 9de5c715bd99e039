package dispatch

// Stats contains dispatcher statistics.
type Stats struct {
	// EventsDispatched is the number of DispatchEvent calls accepted.
	EventsDispatched uint64

	// UniqueEventsDispatched is the number of DispatchUniqueEvent calls accepted.
	UniqueEventsDispatched uint64

	// UniqueEventsCoalesced is the number of unique dispatches that replaced
	// an already pending entry instead of appending one.
	UniqueEventsCoalesced uint64

	// StateUpdates is the number of DispatchStateUpdate calls accepted.
	StateUpdates uint64

	// ListenersNotified is the total number of listener notifications made.
	ListenersNotified uint64

	// ListenerPanics is the number of listener invocations that panicked.
	ListenerPanics uint64

	// DroppedAfterClose is the number of dispatch calls silently dropped
	// because the dispatcher was already closed.
	DroppedAfterClose uint64

	// Flushes is the number of non-empty flushes delivered to the sink.
	Flushes uint64

	// EventsDelivered is the total number of events the sink received.
	EventsDelivered uint64

	// StateUpdatesApplied is the total number of state updates the sink applied.
	StateUpdatesApplied uint64
}

// Stats returns a snapshot of dispatcher statistics.
// Counters are read individually, so a snapshot taken during concurrent
// dispatch may be slightly inconsistent across fields.
func (d *Dispatcher) Stats() Stats {
	qs := d.queue.Stats()
	return Stats{
		EventsDispatched:       d.eventsDispatched.Load(),
		UniqueEventsDispatched: d.uniqueDispatched.Load(),
		UniqueEventsCoalesced:  qs.Coalesced,
		StateUpdates:           d.stateUpdates.Load(),
		ListenersNotified:      d.listenersNotified.Load(),
		ListenerPanics:         d.listenerPanics.Load(),
		DroppedAfterClose:      d.droppedAfterClose.Load(),
		Flushes:                qs.Flushes,
		EventsDelivered:        qs.EventsFlushed,
		StateUpdatesApplied:    qs.StateUpdatesFlushed,
	}
}
