// Package bridge contains consumers of the event delivery engine that
// demonstrate its intended consumption contract: hold a weak handle to the
// dispatch owner, resolve it on every invocation, and no-op when the owner
// is gone. Collaborators following this pattern can safely call into the
// dispatcher's owning session without extending its lifetime.
package bridge

import (
	"github.com/dshills/crossbeat/dispatch"
	"github.com/dshills/crossbeat/event"
)

// TypeConsole is the event type carrying console messages.
const TypeConsole event.Type = "console"

// Console message severity levels, mirroring the console API surface.
const (
	LevelDebug = "debug"
	LevelLog   = "log"
	LevelInfo  = "info"
	LevelWarn  = "warning"
	LevelError = "error"
)

// Message is the payload of a console event.
type Message struct {
	// Level is the console method that produced the message.
	Level string

	// Args are the forwarded console arguments.
	Args []any
}

// Console forwards console-style calls from the producer context to the
// target context through a dispatcher. It holds only a weak handle: every
// call resolves the handle first and becomes a no-op once the owning session
// has been torn down.
type Console struct {
	dispatcher dispatch.Weak
	target     event.Target
}

// NewConsole creates a console bridge emitting events against the given
// target through the weakly held dispatcher.
func NewConsole(dispatcher dispatch.Weak, target event.Target) *Console {
	return &Console{
		dispatcher: dispatcher,
		target:     target,
	}
}

// Debug forwards a console.debug call.
func (c *Console) Debug(args ...any) { c.emit(LevelDebug, args) }

// Log forwards a console.log call.
func (c *Console) Log(args ...any) { c.emit(LevelLog, args) }

// Info forwards a console.info call.
func (c *Console) Info(args ...any) { c.emit(LevelInfo, args) }

// Warn forwards a console.warn call.
func (c *Console) Warn(args ...any) { c.emit(LevelWarn, args) }

// Error forwards a console.error call.
func (c *Console) Error(args ...any) { c.emit(LevelError, args) }

// emit resolves the weak dispatcher handle and dispatches a console event,
// or does nothing if the owner is gone. Console messages are never unique:
// each one matters, so they take the ordinary ordered path.
func (c *Console) emit(level string, args []any) {
	d, ok := c.dispatcher.Resolve()
	if !ok {
		return
	}
	d.DispatchEvent(event.NewRawEvent(TypeConsole, c.target, Message{
		Level: level,
		Args:  args,
	}))
}
