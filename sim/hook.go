package sim

// HookPos names a place where hooks are invoked.
type HookPos struct {
	Name string
}

// HookCtx describes one hook invocation. Item is what the hook position is
// about, such as the event being handled or the element entering a buffer.
// Detail carries anything else the position reports.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// HookPosBeforeEvent is invoked before an event is handled.
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is invoked after an event is handled. Detail holds the
// error returned by the handler.
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// A Hook observes a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// Hookable is anything that hooks can be attached to.
type Hookable interface {
	AcceptHook(hook Hook)
	NumHooks() int
}

// HookableBase implements Hookable. The zero value has no hooks.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook attaches a hook. Hooks are invoked in the order they attach.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of attached hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook passes ctx to every attached hook.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
