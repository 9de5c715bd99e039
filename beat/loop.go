package beat

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Loop is a serial run loop: a single goroutine executing posted callbacks
// in order, one at a time. It backs the target context in tests and in
// consumers that do not bring their own scheduler.
//
// By default posted work is serviced promptly. With a tick interval the loop
// services posted work only on clock ticks, mirroring a vsync-aligned beat;
// the clock is injectable so tick mode is deterministic under a mock clock.
type Loop struct {
	clk  clock.Clock
	tick time.Duration

	mu      sync.Mutex
	work    []func()
	running bool
	stopped bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock sets the clock used for tick mode. Defaults to the real clock.
func WithClock(clk clock.Clock) LoopOption {
	return func(l *Loop) {
		l.clk = clk
	}
}

// WithTickInterval makes the loop service posted work on clock ticks of the
// given interval instead of promptly. A non-positive interval means prompt
// servicing.
func WithTickInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		l.tick = d
	}
}

// NewLoop creates a run loop. The loop does not execute work until Start.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		clk:  clock.New(),
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start starts the loop goroutine.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrLoopRunning
	}
	if l.stopped {
		return ErrLoopStopped
	}
	l.running = true

	go l.run()
	return nil
}

// Stop stops the loop after draining work posted before the call. It waits
// for the loop goroutine to exit or until the context is cancelled.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return ErrLoopNotRunning
	}
	l.running = false
	l.stopped = true
	l.mu.Unlock()

	close(l.quit)

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post schedules fn to run on the loop goroutine. Work posted after Stop is
// silently dropped, consistent with shutdown being a silent no-op path.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.work = append(l.work, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// IsRunning reports whether the loop goroutine is active.
func (l *Loop) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// run is the loop goroutine body.
func (l *Loop) run() {
	defer close(l.done)

	if l.tick > 0 {
		ticker := l.clk.Ticker(l.tick)
		defer ticker.Stop()
		for {
			select {
			case <-l.quit:
				l.drain()
				return
			case <-ticker.C:
				l.drain()
			}
		}
	}

	for {
		select {
		case <-l.quit:
			l.drain()
			return
		case <-l.wake:
			l.drain()
		}
	}
}

// drain executes all currently posted work, including work posted by the
// callbacks it runs, until the queue is observed empty.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		work := l.work
		l.work = nil
		l.mu.Unlock()

		if len(work) == 0 {
			return
		}
		for _, fn := range work {
			fn()
		}
	}
}
