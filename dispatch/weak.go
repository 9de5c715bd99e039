package dispatch

import "github.com/dshills/crossbeat/beat"

// Weak is a resolve-or-noop handle to a Dispatcher. It does not keep the
// dispatcher's session alive: once the dispatcher is closed, Resolve fails
// and the holder is expected to treat its operation as a no-op.
type Weak struct {
	box *beat.OwnerBox
}

// Resolve returns the dispatcher and true while it is alive, or nil and
// false once it has been closed.
func (w Weak) Resolve() (*Dispatcher, bool) {
	if w.box == nil {
		return nil, false
	}
	owner, ok := w.box.Resolve()
	if !ok {
		return nil, false
	}
	d, ok := owner.(*Dispatcher)
	return d, ok
}
