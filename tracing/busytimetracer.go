package tracing

import (
	"sort"
	"sync"

	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// TransmissionFilter selects the transmissions a tracer cares about.
type TransmissionFilter func(tx *signal.Transmission) bool

type interval struct {
	start, end sim.VTimeInSec
}

// BusyTimeTracer traces the time that the medium carries at least one
// transmission. Overlapping transmissions are only counted once.
type BusyTimeTracer struct {
	mu        sync.Mutex
	filter    TransmissionFilter
	intervals []interval
	perRadio  map[string][]interval
}

// NewBusyTimeTracer creates a new BusyTimeTracer. A nil filter accepts every
// transmission.
func NewBusyTimeTracer(filter TransmissionFilter) *BusyTimeTracer {
	return &BusyTimeTracer{
		filter:   filter,
		perRadio: make(map[string][]interval),
	}
}

// Func records the airtime of created transmissions.
func (t *BusyTimeTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != medium.HookPosTransmissionCreated {
		return
	}

	tx := ctx.Item.(*signal.Transmission)
	if t.filter != nil && !t.filter(tx) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := interval{start: tx.StartTime(), end: tx.EndTime()}
	t.intervals = append(t.intervals, i)

	name := tx.TransmitterName()
	t.perRadio[name] = append(t.perRadio[name], i)
}

// BusyTime returns the time the medium has been busy until now.
func (t *BusyTimeTracer) BusyTime(now sim.VTimeInSec) sim.VTimeInSec {
	t.mu.Lock()
	defer t.mu.Unlock()

	return unionLength(t.intervals, now)
}

// RadioBusyTime returns the time a transmitter has been transmitting until
// now.
func (t *BusyTimeTracer) RadioBusyTime(
	name string,
	now sim.VTimeInSec,
) sim.VTimeInSec {
	t.mu.Lock()
	defer t.mu.Unlock()

	return unionLength(t.perRadio[name], now)
}

// Utilization returns the busy fraction of [0, now].
func (t *BusyTimeTracer) Utilization(now sim.VTimeInSec) float64 {
	if now <= 0 {
		return 0
	}

	return float64(t.BusyTime(now) / now)
}

func unionLength(intervals []interval, now sim.VTimeInSec) sim.VTimeInSec {
	clipped := make([]interval, 0, len(intervals))

	for _, i := range intervals {
		if i.start >= now {
			continue
		}

		if i.end > now {
			i.end = now
		}

		clipped = append(clipped, i)
	}

	sort.Slice(clipped, func(a, b int) bool {
		return clipped[a].start < clipped[b].start
	})

	busyTime := sim.VTimeInSec(0)

	var current interval
	started := false

	for _, i := range clipped {
		switch {
		case !started:
			current = i
			started = true
		case i.start <= current.end:
			if i.end > current.end {
				current.end = i.end
			}
		default:
			busyTime += current.end - current.start
			current = i
		}
	}

	if started {
		busyTime += current.end - current.start
	}

	return busyTime
}
