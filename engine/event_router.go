package engine

import "github.com/lixenwraith/arena-fighter/event"

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the simulation goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - All events consumed and dispatched before systems update
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	scratch  []event.GameEvent
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Events pushed by handlers during dispatch wait for the next tick
// Returns the number of events consumed
func (r *EventRouter) DispatchAll() int {
	r.scratch = r.queue.DrainInto(r.scratch)
	for _, ev := range r.scratch {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	n := len(r.scratch)
	clear(r.scratch)
	return n
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
