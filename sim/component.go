package sim

import "sync"

// A Named object has a hierarchical name, such as "Ap.Transmitter".
type Named interface {
	Name() string
}

// A Component is a simulated element, such as a radio or the medium. It
// changes state only while handling its own events.
type Component interface {
	Named
	Handler
	Hookable
}

// ComponentBase is embedded by components. The mutex guards the state that
// the monitor reads from outside the engine goroutine.
type ComponentBase struct {
	HookableBase
	sync.Mutex

	name string
}

// NewComponentBase panics if the name is not valid.
func NewComponentBase(name string) *ComponentBase {
	NameMustBeValid(name)

	return &ComponentBase{name: name}
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}
