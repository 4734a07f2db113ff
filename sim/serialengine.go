package sim

import (
	"fmt"
	"log"
	"math"
	"sync"
)

// A SerialEngine handles one event at a time, in time order, on the
// goroutine that calls Run.
type SerialEngine struct {
	HookableBase

	queue *EventQueue

	mu      sync.Mutex
	resumed *sync.Cond
	now     VTimeInSec
	paused  bool
	handled uint64

	running sync.Mutex

	endHandlers []SimulationEndHandler
}

// NewSerialEngine creates a SerialEngine at time 0.
func NewSerialEngine() *SerialEngine {
	e := &SerialEngine{queue: NewEventQueue()}
	e.resumed = sync.NewCond(&e.mu)

	return e
}

// Schedule queues an event. Events cannot be scheduled in the past.
func (e *SerialEngine) Schedule(evt Event) {
	now := e.CurrentTime()
	if evt.Time() < now {
		log.Panicf("cannot schedule %T @ %.10f, the time is %.10f already",
			evt, evt.Time(), now)
	}

	e.queue.Push(evt)
}

// CurrentTime returns the time of the event being handled, or of the last
// one handled.
func (e *SerialEngine) CurrentTime() VTimeInSec {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.now
}

// NumHandled returns how many events the engine has handled so far.
func (e *SerialEngine) NumHandled() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.handled
}

// Run handles the events until the queue drains. The first handler error
// stops the run. The events still queued can be handled by calling Run again.
func (e *SerialEngine) Run() error {
	return e.run(VTimeInSec(math.Inf(1)))
}

// RunUntil handles the events up to and including the deadline.
func (e *SerialEngine) RunUntil(deadline VTimeInSec) error {
	err := e.run(deadline)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if deadline > e.now {
		e.now = deadline
	}
	e.mu.Unlock()

	return nil
}

func (e *SerialEngine) run(deadline VTimeInSec) error {
	e.running.Lock()
	defer e.running.Unlock()

	for {
		evt := e.next(deadline)
		if evt == nil {
			return nil
		}

		err := e.handle(evt)
		if err != nil {
			return err
		}
	}
}

// next waits while the engine is paused, then takes the next event that is
// due before the deadline and moves the clock to it.
func (e *SerialEngine) next(deadline VTimeInSec) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.paused {
		e.resumed.Wait()
	}

	evt := e.queue.Peek()
	if evt == nil || evt.Time() > deadline {
		return nil
	}

	e.queue.Pop()
	e.now = evt.Time()
	e.handled++

	return evt
}

func (e *SerialEngine) handle(evt Event) error {
	ctx := HookCtx{Domain: e, Pos: HookPosBeforeEvent, Item: evt}
	e.InvokeHook(ctx)

	err := evt.Handler().Handle(evt)

	ctx.Pos = HookPosAfterEvent
	ctx.Detail = err
	e.InvokeHook(ctx)

	if err != nil {
		return fmt.Errorf("%T @ %.10f: %w", evt, evt.Time(), err)
	}

	return nil
}

// Pause stops the engine before the next event. The event being handled is
// finished first.
func (e *SerialEngine) Pause() {
	e.mu.Lock()
	e.paused = true
	e.mu.Unlock()
}

// Continue lets a paused engine carry on.
func (e *SerialEngine) Continue() {
	e.mu.Lock()
	e.paused = false
	e.mu.Unlock()

	e.resumed.Broadcast()
}

// RegisterSimulationEndHandler adds a handler that Finished calls.
func (e *SerialEngine) RegisterSimulationEndHandler(
	handler SimulationEndHandler,
) {
	e.endHandlers = append(e.endHandlers, handler)
}

// Finished tells every SimulationEndHandler that the simulation is over.
func (e *SerialEngine) Finished() {
	now := e.CurrentTime()
	for _, h := range e.endHandlers {
		h.Handle(now)
	}
}
