package event

import (
	"runtime/debug"
	"sync"
)

// PanicHandler is called when a listener panics during notification.
type PanicHandler func(ev RawEvent, recovered any, stack []byte)

// ListenerContainer is a thread-safe multiset of listener handles.
// It supports insertion, identity-based removal, and snapshot iteration:
// Notify copies the handle collection before invoking any listener, so a
// listener that mutates the container mid-notification never corrupts
// iteration and is never invoked more than once per dispatch.
type ListenerContainer struct {
	mu        sync.RWMutex
	listeners []Listener

	panicHandler PanicHandler
}

// ContainerOption configures a ListenerContainer.
type ContainerOption func(*ListenerContainer)

// WithPanicHandler sets the handler invoked when a listener panics.
func WithPanicHandler(h PanicHandler) ContainerOption {
	return func(c *ListenerContainer) {
		c.panicHandler = h
	}
}

// NewListenerContainer creates an empty listener container.
func NewListenerContainer(opts ...ContainerOption) *ListenerContainer {
	c := &ListenerContainer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers a listener. The same handle may be added more than once;
// it will then be notified once per registration.
func (c *ListenerContainer) Add(l Listener) error {
	if l == nil {
		return ErrNilListener
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
	return nil
}

// Remove removes one registration of the listener, matched by handle
// identity. It returns false if the handle is not registered; removing a
// handle twice is a no-op the second time.
//
// A notification that has already snapshotted the listener set may still
// invoke the listener once after Remove returns on another goroutine.
func (c *ListenerContainer) Remove(l Listener) bool {
	if l == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, registered := range c.listeners {
		if registered == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered listener handles.
func (c *ListenerContainer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listeners)
}

// Notify invokes every interested listener with the event and returns the
// number of listeners notified. Each invocation is isolated: a listener that
// panics does not prevent notification of subsequent listeners.
func (c *ListenerContainer) Notify(ev RawEvent) int {
	c.mu.RLock()
	snapshot := make([]Listener, len(c.listeners))
	copy(snapshot, c.listeners)
	c.mu.RUnlock()

	notified := 0
	for _, l := range snapshot {
		if c.notifyOne(l, ev) {
			notified++
		}
	}
	return notified
}

// notifyOne invokes a single listener with panic recovery.
// It returns true if the listener was interested and notified.
func (c *ListenerContainer) notifyOne(l Listener, ev RawEvent) (notified bool) {
	defer func() {
		if r := recover(); r != nil {
			if c.panicHandler != nil {
				stack := debug.Stack()
				func() {
					// Silently recover if the panic handler itself panics.
					defer func() { _ = recover() }()
					c.panicHandler(ev, r, stack)
				}()
			}
		}
	}()

	if !l.Wants(ev) {
		return false
	}
	l.Notify(ev)
	return true
}
