package sim

import (
	"container/heap"
	"sync"
)

// An EventQueue hands out events by time. Events of the same time come out
// in the order they went in, which keeps runs reproducible.
type EventQueue struct {
	mu     sync.Mutex
	slots  timeline
	nextID uint64
}

// NewEventQueue creates an empty EventQueue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	heap.Push(&q.slots, slot{evt: evt, time: evt.Time(), order: q.nextID})
	q.nextID++
}

// Pop removes the earliest event. It returns nil if the queue is empty.
func (q *EventQueue) Pop() Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.slots) == 0 {
		return nil
	}

	return heap.Pop(&q.slots).(slot).evt
}

// Peek returns the earliest event, or nil, and keeps it in the queue.
func (q *EventQueue) Peek() Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.slots) == 0 {
		return nil
	}

	return q.slots[0].evt
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.slots)
}

// slot caches the event time so that the heap does not call into the events
// while sifting.
type slot struct {
	evt   Event
	time  VTimeInSec
	order uint64
}

type timeline []slot

func (t timeline) Len() int { return len(t) }

func (t timeline) Less(i, j int) bool {
	if t[i].time == t[j].time {
		return t[i].order < t[j].order
	}

	return t[i].time < t[j].time
}

func (t timeline) Swap(i, j int) { t[i], t[j] = t[j], t[i] }

func (t *timeline) Push(x any) { *t = append(*t, x.(slot)) }

func (t *timeline) Pop() any {
	old := *t
	last := old[len(old)-1]
	old[len(old)-1] = slot{}
	*t = old[:len(old)-1]

	return last
}
