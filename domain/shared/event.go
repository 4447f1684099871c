package shared

import (
	"reflect"
	"time"
)

// Event Domain event routed by its kind
// The payload shape is defined by the producer of each kind.
type Event interface {
	Kind() string
	OccurredAt() time.Time
	Payload() any
}

// EventHandler Single capability side effect reacting to an event
type EventHandler interface {
	Handle(event Event) error
}

// HandlerFunc adapts a plain function to EventHandler.
// Function values never compare equal, so a HandlerFunc cannot be unregistered.
type HandlerFunc func(event Event) error

// Handle calls f(event)
func (f HandlerFunc) Handle(event Event) error {
	return f(event)
}

// BaseEvent is the stock Event implementation used by every aggregate
type BaseEvent struct {
	kind       string
	occurredAt time.Time
	payload    any
}

// NewEvent stamps a new event of the given kind with the current time
func NewEvent(kind string, payload any) *BaseEvent {
	return &BaseEvent{
		kind:       kind,
		occurredAt: time.Now(),
		payload:    payload,
	}
}

func (e *BaseEvent) Kind() string          { return e.kind }
func (e *BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *BaseEvent) Payload() any          { return e.payload }

// EventDispatcher Process-local registry mapping an event kind to its handlers
//
// The dispatcher is owned by whoever creates it and is handed explicitly to
// the entities that emit events. Delivery is synchronous, on the caller's
// goroutine, in registration order. It is not safe for concurrent use.
type EventDispatcher struct {
	handlers map[string][]EventHandler
}

// NewEventDispatcher creates an empty dispatcher
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register appends handler to the kind's list; duplicates are kept
func (d *EventDispatcher) Register(kind string, handler EventHandler) {
	d.handlers[kind] = append(d.handlers[kind], handler)
}

// Unregister removes the first handler structurally equal to handler.
// The kind stays registered even when its list becomes empty.
func (d *EventDispatcher) Unregister(kind string, handler EventHandler) {
	handlers, ok := d.handlers[kind]
	if !ok {
		return
	}

	for i, h := range handlers {
		if reflect.DeepEqual(h, handler) {
			remaining := make([]EventHandler, 0, len(handlers)-1)
			remaining = append(remaining, handlers[:i]...)
			remaining = append(remaining, handlers[i+1:]...)
			d.handlers[kind] = remaining
			return
		}
	}
}

// UnregisterAll drops every kind together with its handlers
func (d *EventDispatcher) UnregisterAll() {
	d.handlers = make(map[string][]EventHandler)
}

// Notify delivers event to every handler registered for its kind.
// The first handler error stops delivery and is returned as is.
func (d *EventDispatcher) Notify(event Event) error {
	for _, handler := range d.handlers[event.Kind()] {
		if err := handler.Handle(event); err != nil {
			return err
		}
	}
	return nil
}

// Handlers returns a copy of the kind -> handlers registry
func (d *EventDispatcher) Handlers() map[string][]EventHandler {
	snapshot := make(map[string][]EventHandler, len(d.handlers))
	for kind, handlers := range d.handlers {
		snapshot[kind] = append([]EventHandler{}, handlers...)
	}
	return snapshot
}
