package auth

import "sync"

// EventKind distinguishes session lifecycle notifications.
type EventKind string

const (
	SessionEstablished EventKind = "session_established"
	SessionInvalidated EventKind = "session_invalidated"
)

// Event notifies subscribers that a learner's authenticated session
// changed. Invalidation must drop any in-flight queue for that learner.
type Event struct {
	Kind      EventKind
	LearnerID string
}

// Hub fans session events out to subscribers. Replaces the ambient
// auth-state callback of the hosted identity client with an explicit
// publish/subscribe seam.
type Hub struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn for all future events.
func (h *Hub) Subscribe(fn func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, fn)
}

// Publish delivers the event to every subscriber, synchronously and in
// subscription order.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	subs := make([]func(Event), len(h.subscribers))
	copy(subs, h.subscribers)
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}
