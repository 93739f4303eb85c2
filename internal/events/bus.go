package events

import (
	"reflect"
	"sync"
)

// Bus is an in-process, typed publish/subscribe event bus. Handlers are
// registered per concrete event type and invoked for every published event
// of that type. Safe for concurrent Subscribe and Publish.
type Bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]func(any)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Subscribe registers handler for events of type T. Registration order
// between different subscribers carries no delivery guarantee.
func Subscribe[T any](b *Bus, handler func(T)) {
	var zero T
	t := reflect.TypeOf(zero)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], func(e any) {
		handler(e.(T))
	})
}

// Publish delivers event synchronously to every handler subscribed to its
// concrete type. Events with no subscribers are dropped silently.
func Publish[T any](b *Bus, event T) {
	t := reflect.TypeOf(event)

	b.mu.RLock()
	handlers := b.handlers[t]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// PublishAsync delivers event on a new goroutine per subscriber, so slow
// handlers do not block the publisher or each other.
func PublishAsync[T any](b *Bus, event T) {
	t := reflect.TypeOf(event)

	b.mu.RLock()
	handlers := b.handlers[t]
	b.mu.RUnlock()

	for _, h := range handlers {
		go h(event)
	}
}
