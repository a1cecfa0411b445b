package event

import (
	"sync"
)

// EventQueue is a bounded FIFO of session events
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (frame loop)
//
// Overflow: oldest events are dropped when full
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	spare   []GameEvent
	limit   int
	dropped uint64
}

// NewEventQueue creates a queue holding at most limit undelivered events
func NewEventQueue(limit int) *EventQueue {
	if limit <= 0 {
		limit = 1
	}
	return &EventQueue{
		pending: make([]GameEvent, 0, limit),
		spare:   make([]GameEvent, 0, limit),
		limit:   limit,
	}
}

// Push appends an event, evicting the oldest when the queue is full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	if len(eq.pending) >= eq.limit {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
		eq.dropped++
	}
	eq.pending = append(eq.pending, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order
// The returned slice is valid until the next Consume call
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Dropped returns how many events were evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
