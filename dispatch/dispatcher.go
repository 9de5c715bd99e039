package dispatch

import (
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/crossbeat/beat"
	"github.com/dshills/crossbeat/event"
	"github.com/dshills/crossbeat/queue"
)

// Dispatcher is the entry point other subsystems use to submit events and
// state updates for delivery to the target context, and to register
// side-channel listeners. One dispatcher is constructed per runtime-target
// session and closed when the session ends.
type Dispatcher struct {
	queue     *queue.Queue
	listeners *event.ListenerContainer
	box       *beat.OwnerBox
	logger    *zap.Logger
	clk       clock.Clock

	closed atomic.Bool

	eventsDispatched  atomic.Uint64
	uniqueDispatched  atomic.Uint64
	stateUpdates      atomic.Uint64
	listenersNotified atomic.Uint64
	listenerPanics    atomic.Uint64
	droppedAfterClose atomic.Uint64
}

// New creates a dispatcher delivering to sink. The default configuration
// uses a synchronous beat; pass WithAsyncBeat to batch flushes onto a target
// scheduler.
func New(sink queue.Sink, opts ...Option) (*Dispatcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dispatcher{
		logger: cfg.logger,
		clk:    cfg.clk,
	}
	d.listeners = event.NewListenerContainer(
		event.WithPanicHandler(d.onListenerPanic),
	)
	d.box = beat.NewOwnerBox(d)

	proc, err := queue.NewProcessor(sink, queue.WithProcessorLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	q, err := queue.New(proc, cfg.factory, d.box)
	if err != nil {
		return nil, err
	}
	d.queue = q

	return d, nil
}

// DispatchEvent notifies every registered listener synchronously on the
// calling goroutine, then enqueues the event for delivery to the target
// context. No deduplication is applied.
func (d *Dispatcher) DispatchEvent(ev event.RawEvent) {
	if d.dropIfClosed(ev.Type) {
		return
	}
	ev = d.stamp(ev)
	d.eventsDispatched.Add(1)
	d.notify(ev)
	d.queue.Enqueue(ev)
}

// DispatchUniqueEvent notifies listeners like DispatchEvent, then enqueues
// under the deduplication rule: if an entry with the same (type, target)
// pair is already pending, its payload is overwritten in place at its
// original queue position; otherwise a new entry is appended. The target
// context never observes two stale events for the same pair - only the most
// recent payload survives until flush.
func (d *Dispatcher) DispatchUniqueEvent(ev event.RawEvent) {
	if d.dropIfClosed(ev.Type) {
		return
	}
	ev = d.stamp(ev)
	d.uniqueDispatched.Add(1)
	d.notify(ev)
	d.queue.EnqueueUnique(ev)
}

// DispatchStateUpdate enqueues a state transition for the target context.
// State updates travel a path independent of the raw-event queue: no
// deduplication, no listener notification - transitions are cumulative and
// each one matters.
func (d *Dispatcher) DispatchStateUpdate(su event.StateUpdate) {
	if d.closed.Load() {
		d.droppedAfterClose.Add(1)
		d.logger.Debug("state update dropped after close", zap.Int("target", int(su.Target)))
		return
	}
	d.stateUpdates.Add(1)
	d.queue.EnqueueStateUpdate(su)
}

// AddListener registers a listener for side-channel notification of every
// dispatched event. A listener added during an in-flight notification is not
// guaranteed to see the event that triggered the addition.
func (d *Dispatcher) AddListener(l event.Listener) error {
	return d.listeners.Add(l)
}

// RemoveListener removes a listener by handle identity and reports whether
// a registration was removed. Removing the same handle twice is a no-op the
// second time. A notification that already snapshotted the listener set may
// still invoke the listener once after RemoveListener returns.
func (d *Dispatcher) RemoveListener(l event.Listener) bool {
	return d.listeners.Remove(l)
}

// Close tears the dispatcher down: the owner box is destroyed, so any beat
// callback firing afterwards skips its flush, and subsequent dispatch calls
// are silently dropped. Close is idempotent.
func (d *Dispatcher) Close() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}
	d.box.Destroy()
	d.logger.Debug("dispatcher closed")
}

// IsClosed reports whether Close has been called.
func (d *Dispatcher) IsClosed() bool {
	return d.closed.Load()
}

// Weak returns a resolve-or-noop handle to this dispatcher. Collaborators
// that must not extend the dispatcher's lifetime hold the handle and resolve
// it at every call site.
func (d *Dispatcher) Weak() Weak {
	return Weak{box: d.box}
}

// Queue exposes the underlying queue, primarily for stats inspection.
func (d *Dispatcher) Queue() *queue.Queue {
	return d.queue
}

// dropIfClosed records and logs a dropped dispatch after Close.
// Dropping is expected shutdown behavior, not an error.
func (d *Dispatcher) dropIfClosed(typ event.Type) bool {
	if !d.closed.Load() {
		return false
	}
	d.droppedAfterClose.Add(1)
	d.logger.Debug("event dropped after close", zap.String("type", string(typ)))
	return true
}

// stamp fills in missing event metadata using the dispatcher's clock.
func (d *Dispatcher) stamp(ev event.RawEvent) event.RawEvent {
	if ev.Metadata.ID == "" {
		ev.Metadata.ID = uuid.NewString()
	}
	if ev.Metadata.Timestamp.IsZero() {
		ev.Metadata.Timestamp = d.clk.Now()
	}
	return ev
}

// notify runs the listener side channel for an event.
func (d *Dispatcher) notify(ev event.RawEvent) {
	n := d.listeners.Notify(ev)
	d.listenersNotified.Add(uint64(n))
}

// onListenerPanic records a listener fault. The event still reaches the
// primary delivery path and the remaining listeners.
func (d *Dispatcher) onListenerPanic(ev event.RawEvent, recovered any, stack []byte) {
	d.listenerPanics.Add(1)
	d.logger.Error("listener panicked",
		zap.String("type", string(ev.Type)),
		zap.Int("target", int(ev.Target)),
		zap.Any("panic", recovered),
		zap.ByteString("stack", stack),
	)
}
