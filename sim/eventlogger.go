package sim

import "log"

// LogHookBase is embedded by the hooks that print into a logger.
type LogHookBase struct {
	*log.Logger
}

// EventLogger prints one line per event handled by an engine:
// the time, the event type, and the name of the handler when it has one.
type EventLogger struct {
	LogHookBase
}

// NewEventLogger creates an EventLogger that prints into logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{LogHookBase{Logger: logger}}
}

// Func prints the events about to be handled.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	target := "-"
	if named, ok := evt.Handler().(Named); ok {
		target = named.Name()
	}

	h.Printf("%.10f %T -> %s", evt.Time(), evt, target)
}
