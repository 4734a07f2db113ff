package sim

// TimeTeller tells the current simulated time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler accepts events that happen now or later.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler is told when the simulation is over, so that it can
// flush whatever it accumulated.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine drives a discrete event simulation.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run handles events until none is left or a handler fails.
	Run() error

	// RunUntil is Run, but leaves the events after the deadline in the queue.
	// The current time is moved to the deadline if the run did not fail.
	RunUntil(deadline VTimeInSec) error

	// Pause blocks the engine before the next event. Continue releases it.
	Pause()
	Continue()

	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished calls the SimulationEndHandlers in registration order.
	Finished()
}
