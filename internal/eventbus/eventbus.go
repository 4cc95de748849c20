package eventbus

import (
	"droplist/internal/domain"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventOpenChanged      = domain.EventOpenChanged
	EventSearchChanged    = domain.EventSearchChanged
	EventSelectionChanged = domain.EventSelectionChanged
	EventHighlightChanged = domain.EventHighlightChanged
	EventAnnouncement     = domain.EventAnnouncement
	EventFocusRequested   = domain.EventFocusRequested
)

// Re-export domain event types
type OpenChangedEvent = domain.OpenChangedEvent
type SearchChangedEvent = domain.SearchChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type HighlightChangedEvent = domain.HighlightChangedEvent
type AnnouncementEvent = domain.AnnouncementEvent
type FocusRequestedEvent = domain.FocusRequestedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus. Dispatch is
// synchronous on the publisher's goroutine: a state transition is
// fully applied before Publish is called, so every handler observes
// one consistent post-transition snapshot and handlers run in
// subscription order.
type subscription struct {
	id      int
	handler EventHandler
}

type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent)                                  {}
func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func() { return func() {} }
