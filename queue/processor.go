package queue

import (
	"go.uber.org/zap"

	"github.com/dshills/crossbeat/event"
)

// Sink applies flushed entries inside the target context's own object model.
// It receives entries strictly in flush order and is only ever invoked from
// the target context's scheduling goroutine, never concurrently with itself.
type Sink interface {
	// DeliverEvent applies a raw event against its target.
	DeliverEvent(ev event.RawEvent)

	// ApplyStateUpdate applies a state transition against its target.
	ApplyStateUpdate(su event.StateUpdate)
}

// Processor turns a flushed batch into delivery calls against the sink.
// It is pure delivery logic with no threading concerns of its own; the queue
// guarantees at most one flush is running at a time.
type Processor struct {
	sink   Sink
	logger *zap.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets the processor's logger. Defaults to a no-op logger.
func WithProcessorLogger(logger *zap.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a processor delivering to the given sink.
func NewProcessor(sink Sink, opts ...ProcessorOption) (*Processor, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	p := &Processor{
		sink:   sink,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// FlushEvents delivers events to the sink in order.
func (p *Processor) FlushEvents(events []event.RawEvent) {
	if len(events) == 0 {
		return
	}
	p.logger.Debug("flushing events", zap.Int("count", len(events)))
	for _, ev := range events {
		p.sink.DeliverEvent(ev)
	}
}

// FlushStateUpdates applies state updates to the sink in order.
func (p *Processor) FlushStateUpdates(updates []event.StateUpdate) {
	if len(updates) == 0 {
		return
	}
	p.logger.Debug("flushing state updates", zap.Int("count", len(updates)))
	for _, su := range updates {
		p.sink.ApplyStateUpdate(su)
	}
}
