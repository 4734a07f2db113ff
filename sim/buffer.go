package sim

import "log"

// HookPosBufPush is invoked after an element enters a buffer.
var HookPosBufPush = &HookPos{Name: "Buffer Push"}

// HookPosBufPop is invoked after an element leaves a buffer.
var HookPosBufPop = &HookPos{Name: "Buffer Pop"}

// A Buffer is a bounded FIFO, such as the transmit queues of a radio. Push
// and Pop invoke hooks so that queue levels can be observed.
type Buffer interface {
	Named
	Hookable

	CanPush() bool

	// Push panics if the buffer is full.
	Push(e any)

	// Pop and Peek return nil if the buffer is empty.
	Pop() any
	Peek() any

	Capacity() int
	Size() int
	Clear()
}

// NewBuffer creates a Buffer that holds up to capacity elements.
func NewBuffer(name string, capacity int) Buffer {
	NameMustBeValid(name)

	if capacity < 0 {
		log.Panicf("buffer %s: negative capacity %d", name, capacity)
	}

	return &ring{
		name:  name,
		slots: make([]any, capacity),
	}
}

// ring stores the elements in a fixed slice that wraps around.
type ring struct {
	HookableBase

	name  string
	slots []any
	head  int
	size  int
}

func (b *ring) Name() string {
	return b.name
}

func (b *ring) CanPush() bool {
	return b.size < len(b.slots)
}

func (b *ring) Push(e any) {
	if !b.CanPush() {
		log.Panicf("buffer %s is full", b.name)
	}

	b.slots[(b.head+b.size)%len(b.slots)] = e
	b.size++

	b.notify(HookPosBufPush, e)
}

func (b *ring) Pop() any {
	if b.size == 0 {
		return nil
	}

	e := b.slots[b.head]
	b.slots[b.head] = nil
	b.head = (b.head + 1) % len(b.slots)
	b.size--

	b.notify(HookPosBufPop, e)

	return e
}

func (b *ring) Peek() any {
	if b.size == 0 {
		return nil
	}

	return b.slots[b.head]
}

func (b *ring) Capacity() int {
	return len(b.slots)
}

func (b *ring) Size() int {
	return b.size
}

func (b *ring) Clear() {
	clear(b.slots)
	b.head = 0
	b.size = 0
}

func (b *ring) notify(pos *HookPos, e any) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(HookCtx{Domain: b, Pos: pos, Item: e})
}
