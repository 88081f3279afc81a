package ecs

// EventKind identifies what happened during a frame.
type EventKind string

const (
	EventRespawn        EventKind = "respawn"
	EventFinaleStarted  EventKind = "finale_started"
	EventFinaleFinished EventKind = "finale_finished"
)

// Event is a notification raised by a system for the host to observe.
type Event struct {
	Kind   EventKind
	Entity Entity
	Reason string
}

// EventQueue is a simple FIFO queue drained by the host after each frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
