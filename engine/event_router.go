package engine

// EventHandler processes specific event types
// Collaborators implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously on the main loop after the frame's systems ran
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the main loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// Returns the number of events consumed
func (r *EventRouter) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
