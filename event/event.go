package event

import (
	"time"

	"github.com/google/uuid"
)

// Type is the event type tag (e.g., "pointer.click", "scroll").
type Type string

// Target identifies the logical element an event or state update concerns.
type Target int

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time
}

// RawEvent is an opaque payload tagged with an event type and a target.
// RawEvents are immutable once created.
type RawEvent struct {
	// Type is the event type tag.
	Type Type

	// Target is the logical element this event concerns.
	Target Target

	// Payload contains the event-specific data.
	Payload any

	// Metadata contains standard event information.
	Metadata Metadata
}

// NewRawEvent creates a new event with populated metadata.
func NewRawEvent(typ Type, target Target, payload any) RawEvent {
	return RawEvent{
		Type:    typ,
		Target:  target,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
		},
	}
}

// StateUpdate represents a state transition to apply against a target.
// State updates are cumulative: each one matters and none are deduplicated.
type StateUpdate struct {
	// Target is the logical element whose state is being transitioned.
	Target Target

	// Payload contains the transition data.
	Payload any
}
