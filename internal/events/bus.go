package events

import (
	"fmt"
	"log"
	"slices"
	"sort"
	"sync"
)

// Listener processes events
type Listener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus delivers editor and persistence events to listeners in priority order
type Bus struct {
	listeners map[Type][]Listener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe adds a listener for an event type. Lower priorities run first.
func (b *Bus) Subscribe(eventType Type, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := append(b.listeners[eventType], listener)
	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})
	b.listeners[eventType] = listeners

	log.Printf("[EVENTS] Subscribed %s to %s with priority %d", listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener by id
func (b *Bus) Unsubscribe(eventType Type, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.listeners[eventType])
	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l Listener) bool {
		return l.ID() == listenerID
	})
	if len(b.listeners[eventType]) != before {
		log.Printf("[EVENTS] Unsubscribed %s from %s", listenerID, eventType)
	}
}

// Emit runs the listeners for the event's type until one fails or cancels the event
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("[EVENTS] %s cancelled, skipping remaining listeners", event.GetType())
			break
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}
	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[Type][]Listener)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc struct {
	Name   string
	Order  int
	Handle func(Event) error
}

func (f *ListenerFunc) ID() string                    { return f.Name }
func (f *ListenerFunc) Priority() int                 { return f.Order }
func (f *ListenerFunc) HandleEvent(event Event) error { return f.Handle(event) }
