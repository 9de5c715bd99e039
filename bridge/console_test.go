package bridge

import (
	"sync"
	"testing"

	"github.com/dshills/crossbeat/dispatch"
	"github.com/dshills/crossbeat/event"
)

// recordSink records delivered entries.
type recordSink struct {
	mu     sync.Mutex
	events []event.RawEvent
}

func (s *recordSink) DeliverEvent(ev event.RawEvent) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordSink) ApplyStateUpdate(event.StateUpdate) {}

func TestConsole_Log_DeliversThroughDispatcher(t *testing.T) {
	sink := &recordSink{}
	d, err := dispatch.New(sink)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Close()

	c := NewConsole(d.Weak(), 7)
	c.Log("hello", 42)
	c.Warn("careful")

	if len(sink.events) != 2 {
		t.Fatalf("delivered %d events, want 2", len(sink.events))
	}

	first, ok := sink.events[0].Payload.(Message)
	if !ok {
		t.Fatalf("payload type = %T, want Message", sink.events[0].Payload)
	}
	if first.Level != LevelLog {
		t.Errorf("Level = %q, want %q", first.Level, LevelLog)
	}
	if len(first.Args) != 2 || first.Args[0] != "hello" || first.Args[1] != 42 {
		t.Errorf("Args = %v, want [hello 42]", first.Args)
	}
	if sink.events[0].Type != TypeConsole || sink.events[0].Target != 7 {
		t.Errorf("event = %s target=%d, want %s target=7", sink.events[0].Type, sink.events[0].Target, TypeConsole)
	}

	second, _ := sink.events[1].Payload.(Message)
	if second.Level != LevelWarn {
		t.Errorf("Level = %q, want %q", second.Level, LevelWarn)
	}
}

func TestConsole_NoopAfterClose(t *testing.T) {
	sink := &recordSink{}
	d, err := dispatch.New(sink)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c := NewConsole(d.Weak(), 7)
	d.Close()

	// Every invocation resolves the weak handle first; with the owner gone
	// the call is a no-op rather than a fault.
	c.Log("dropped")
	c.Error("also dropped")

	if len(sink.events) != 0 {
		t.Errorf("delivered %d events after Close, want 0", len(sink.events))
	}
	if got := d.Stats().DroppedAfterClose; got != 0 {
		t.Errorf("Stats().DroppedAfterClose = %d, want 0 (calls no-op before dispatch)", got)
	}
}

func TestConsole_Levels(t *testing.T) {
	sink := &recordSink{}
	d, err := dispatch.New(sink)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Close()

	c := NewConsole(d.Weak(), 1)

	tests := []struct {
		name string
		call func(...any)
		want string
	}{
		{"debug", c.Debug, LevelDebug},
		{"log", c.Log, LevelLog},
		{"info", c.Info, LevelInfo},
		{"warn", c.Warn, LevelWarn},
		{"error", c.Error, LevelError},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call("msg")
			msg, ok := sink.events[i].Payload.(Message)
			if !ok {
				t.Fatalf("payload type = %T, want Message", sink.events[i].Payload)
			}
			if msg.Level != tt.want {
				t.Errorf("Level = %q, want %q", msg.Level, tt.want)
			}
		})
	}
}
