package event

import "sync"

// EventQueue is an ordered, unbounded queue of game events
// Thread-Safety:
//   - Push: any goroutine, though the core pushes from the tick loop only
//   - Consume: single consumer (router during dispatch)
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, 16),
	}
}

// Push appends an event, preserving emission order
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, cap(result))
	return result
}

// Peek returns a copy of pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
