package sim

// VTimeInSec is a point on the simulated timeline, in seconds.
type VTimeInSec float64

// An Event is something that happens to one Handler at one point in
// simulated time.
type Event interface {
	Time() VTimeInSec
	Handler() Handler
}

// A Handler reacts to the events scheduled for it. An error stops the engine.
//
// A handler should only modify its own state when handling an event. Other
// handlers are reached by scheduling events for them.
type Handler interface {
	Handle(e Event) error
}

// EventBase carries the fields shared by all the events. Concrete events
// embed a pointer to it.
type EventBase struct {
	ID      string
	time    VTimeInSec
	handler Handler
}

// NewEventBase creates an EventBase with a fresh ID.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	return &EventBase{
		ID:      GetIDGenerator().Generate(),
		time:    t,
		handler: handler,
	}
}

// Time returns when the event happens.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns who handles the event.
func (e EventBase) Handler() Handler {
	return e.handler
}
