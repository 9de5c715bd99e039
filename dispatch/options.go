package dispatch

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/dshills/crossbeat/beat"
)

// config holds dispatcher construction settings.
type config struct {
	factory beat.Factory
	logger  *zap.Logger
	clk     clock.Clock
}

// defaultConfig returns the default dispatcher configuration: a synchronous
// beat, a no-op logger, and the real clock.
func defaultConfig() config {
	return config{
		factory: beat.SyncFactory(),
		logger:  zap.NewNop(),
		clk:     clock.New(),
	}
}

// Option configures a Dispatcher.
type Option func(*config)

// WithAsyncBeat delivers through an asynchronous beat scheduled on the given
// target scheduler. Flushes then run on the scheduler's goroutine, batched.
func WithAsyncBeat(scheduler beat.Scheduler) Option {
	return func(c *config) {
		c.factory = beat.AsyncFactory(scheduler)
	}
}

// WithSyncBeat delivers through a synchronous beat: flushes run inline on
// the dispatching goroutine. This is the default.
func WithSyncBeat() Option {
	return func(c *config) {
		c.factory = beat.SyncFactory()
	}
}

// WithBeatFactory installs a custom beat factory.
func WithBeatFactory(factory beat.Factory) Option {
	return func(c *config) {
		if factory != nil {
			c.factory = factory
		}
	}
}

// WithLogger sets the dispatcher's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp event metadata. Defaults to the
// real clock; tests inject a mock.
func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clk = clk
		}
	}
}
