package queue

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/crossbeat/beat"
	"github.com/dshills/crossbeat/event"
)

// uniqueKey identifies the event class a unique-dispatch deduplicates on.
type uniqueKey struct {
	typ    event.Type
	target event.Target
}

// Queue owns the pending buffers and the beat that decides when they flush.
// It is safe for concurrent producers; see the package documentation for the
// ordering and deduplication guarantees.
type Queue struct {
	proc *Processor
	beat beat.Beat

	mu     sync.Mutex
	events []event.RawEvent
	states []event.StateUpdate
	unique map[uniqueKey]int

	// flushing marks a flush in progress. Flush calls arriving while it is
	// set return immediately; the in-progress flush drains their entries as
	// a follow-up batch. This keeps the sink strictly serial and makes a
	// reentrant flush (a sink enqueueing through a synchronous beat) safe.
	flushing bool

	enqueued      atomic.Uint64
	coalesced     atomic.Uint64
	stateUpdates  atomic.Uint64
	flushes       atomic.Uint64
	eventsFlushed atomic.Uint64
	statesFlushed atomic.Uint64
}

// New creates a queue delivering through proc, with its beat built by
// factory against the given owner box. The beat's flush callback is the
// queue's Flush, bound before the beat can fire.
func New(proc *Processor, factory beat.Factory, box *beat.OwnerBox) (*Queue, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}
	if factory == nil {
		return nil, ErrNilBeatFactory
	}
	if box == nil {
		return nil, ErrNilOwnerBox
	}
	q := &Queue{proc: proc}
	q.beat = factory(box, q.Flush)
	return q, nil
}

// Enqueue appends an event to the pending buffer and requests the beat.
func (q *Queue) Enqueue(ev event.RawEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()

	q.enqueued.Add(1)
	q.beat.Request()
}

// EnqueueUnique appends an event unless an entry with the same (type, target)
// pair is already pending, in which case the pending payload is overwritten
// in place, preserving the original queue position.
func (q *Queue) EnqueueUnique(ev event.RawEvent) {
	key := uniqueKey{typ: ev.Type, target: ev.Target}
	replaced := false

	q.mu.Lock()
	if q.unique == nil {
		q.unique = make(map[uniqueKey]int)
	}
	if idx, ok := q.unique[key]; ok {
		// Fail closed: if the index ever disagrees with the buffer, append
		// rather than overwrite an unverified slot.
		if idx < len(q.events) && q.events[idx].Type == ev.Type && q.events[idx].Target == ev.Target {
			q.events[idx] = ev
			replaced = true
		}
	}
	if !replaced {
		q.unique[key] = len(q.events)
		q.events = append(q.events, ev)
	}
	q.mu.Unlock()

	if replaced {
		q.coalesced.Add(1)
	} else {
		q.enqueued.Add(1)
	}
	q.beat.Request()
}

// EnqueueStateUpdate appends a state update to the pending state buffer and
// requests the beat. State updates are never deduplicated.
func (q *Queue) EnqueueStateUpdate(su event.StateUpdate) {
	q.mu.Lock()
	q.states = append(q.states, su)
	q.mu.Unlock()

	q.stateUpdates.Add(1)
	q.beat.Request()
}

// Flush takes the current pending buffers and delivers them through the
// processor, state updates first, then events, each in FIFO order. Entries
// enqueued while a batch is being delivered are never interleaved into it;
// they are drained as a follow-up batch before Flush returns, or by the next
// beat cycle. A Flush that finds another flush in progress returns
// immediately, so the sink is never invoked concurrently with itself.
func (q *Queue) Flush() {
	q.mu.Lock()
	if q.flushing {
		q.mu.Unlock()
		return
	}
	q.flushing = true

	for len(q.events) > 0 || len(q.states) > 0 {
		events := q.events
		states := q.states
		q.events = nil
		q.states = nil
		q.unique = nil
		q.mu.Unlock()

		q.flushes.Add(1)
		q.proc.FlushStateUpdates(states)
		q.proc.FlushEvents(events)
		q.statesFlushed.Add(uint64(len(states)))
		q.eventsFlushed.Add(uint64(len(events)))

		q.mu.Lock()
	}

	q.flushing = false
	q.mu.Unlock()
}

// PendingEvents returns the number of events waiting for the next flush.
func (q *Queue) PendingEvents() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// PendingStateUpdates returns the number of state updates waiting for the
// next flush.
func (q *Queue) PendingStateUpdates() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.states)
}

// Stats returns a snapshot of queue statistics.
func (q *Queue) Stats() Stats {
	return Stats{
		Enqueued:            q.enqueued.Load(),
		Coalesced:           q.coalesced.Load(),
		StateUpdates:        q.stateUpdates.Load(),
		Flushes:             q.flushes.Load(),
		EventsFlushed:       q.eventsFlushed.Load(),
		StateUpdatesFlushed: q.statesFlushed.Load(),
	}
}

// Stats contains queue statistics.
type Stats struct {
	// Enqueued is the number of events appended to the pending buffer.
	Enqueued uint64

	// Coalesced is the number of unique enqueues that overwrote an already
	// pending entry instead of appending.
	Coalesced uint64

	// StateUpdates is the number of state updates enqueued.
	StateUpdates uint64

	// Flushes is the number of non-empty flushes performed.
	Flushes uint64

	// EventsFlushed is the total number of events delivered to the sink.
	EventsFlushed uint64

	// StateUpdatesFlushed is the total number of state updates applied.
	StateUpdatesFlushed uint64
}
