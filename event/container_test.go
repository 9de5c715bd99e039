package event

import (
	"sync"
	"testing"
)

// recordListener records every event it is notified with.
type recordListener struct {
	mu     sync.Mutex
	events []RawEvent
	wants  func(RawEvent) bool
}

func (l *recordListener) Wants(ev RawEvent) bool {
	if l.wants != nil {
		return l.wants(ev)
	}
	return true
}

func (l *recordListener) Notify(ev RawEvent) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *recordListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

func TestListenerContainer_Add_Nil(t *testing.T) {
	c := NewListenerContainer()

	if err := c.Add(nil); err != ErrNilListener {
		t.Errorf("Add(nil) = %v, want ErrNilListener", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestListenerContainer_Remove_Idempotent(t *testing.T) {
	c := NewListenerContainer()
	l := &recordListener{}

	if err := c.Add(l); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !c.Remove(l) {
		t.Error("first Remove() = false, want true")
	}
	if c.Remove(l) {
		t.Error("second Remove() = true, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestListenerContainer_Remove_Unregistered(t *testing.T) {
	c := NewListenerContainer()

	if c.Remove(&recordListener{}) {
		t.Error("Remove() of unregistered listener = true, want false")
	}
	if c.Remove(nil) {
		t.Error("Remove(nil) = true, want false")
	}
}

func TestListenerContainer_Notify_AllInterested(t *testing.T) {
	c := NewListenerContainer()
	a := &recordListener{}
	b := &recordListener{}
	_ = c.Add(a)
	_ = c.Add(b)

	ev := NewRawEvent("pointer.click", 1, nil)
	if n := c.Notify(ev); n != 2 {
		t.Errorf("Notify() = %d, want 2", n)
	}
	if a.count() != 1 || b.count() != 1 {
		t.Errorf("listener counts = %d, %d, want 1, 1", a.count(), b.count())
	}
}

func TestListenerContainer_Notify_WantsFilter(t *testing.T) {
	c := NewListenerContainer()
	interested := &recordListener{}
	bored := &recordListener{wants: func(RawEvent) bool { return false }}
	_ = c.Add(interested)
	_ = c.Add(bored)

	if n := c.Notify(NewRawEvent("scroll", 1, nil)); n != 1 {
		t.Errorf("Notify() = %d, want 1", n)
	}
	if bored.count() != 0 {
		t.Errorf("uninterested listener notified %d times, want 0", bored.count())
	}
}

func TestListenerContainer_Notify_RemoveSelfDuring(t *testing.T) {
	c := NewListenerContainer()

	var self Listener
	calls := 0
	self = ListenerFunc(func(RawEvent) {
		calls++
		c.Remove(self)
	})
	_ = c.Add(self)

	ev := NewRawEvent("pointer.click", 1, nil)
	c.Notify(ev)
	c.Notify(ev)

	if calls != 1 {
		t.Errorf("listener invoked %d times, want 1", calls)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestListenerContainer_Notify_AddDuringNotInvoked(t *testing.T) {
	c := NewListenerContainer()

	late := &recordListener{}
	_ = c.Add(ListenerFunc(func(RawEvent) {
		_ = c.Add(late)
	}))

	c.Notify(NewRawEvent("pointer.click", 1, nil))
	if late.count() != 0 {
		t.Errorf("listener added during notification saw %d events, want 0", late.count())
	}

	c.Notify(NewRawEvent("pointer.click", 1, nil))
	if late.count() != 1 {
		t.Errorf("listener saw %d events after second dispatch, want 1", late.count())
	}
}

func TestListenerContainer_Notify_PanicIsolation(t *testing.T) {
	var panics []any
	c := NewListenerContainer(WithPanicHandler(func(_ RawEvent, recovered any, _ []byte) {
		panics = append(panics, recovered)
	}))

	after := &recordListener{}
	_ = c.Add(ListenerFunc(func(RawEvent) { panic("listener fault") }))
	_ = c.Add(after)

	c.Notify(NewRawEvent("pointer.click", 1, nil))

	if after.count() != 1 {
		t.Errorf("subsequent listener notified %d times, want 1", after.count())
	}
	if len(panics) != 1 || panics[0] != "listener fault" {
		t.Errorf("panic handler calls = %v, want one %q", panics, "listener fault")
	}
}

func TestListenerContainer_Concurrent(t *testing.T) {
	c := NewListenerContainer()
	ev := NewRawEvent("pointer.click", 1, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				l := &recordListener{}
				_ = c.Add(l)
				c.Notify(ev)
				c.Remove(l)
			}
		}()
	}
	wg.Wait()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after balanced add/remove, want 0", c.Len())
	}
}
