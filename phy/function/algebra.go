package function

import (
	"math"
	"slices"

	"github.com/sarchlab/radiosim/sim"
)

// Product returns the pointwise product of a and b. The domain of the result
// is the intersection of the two domains. If they do not overlap, the result
// is zero everywhere.
func Product(a, b Function) Function {
	overlap, ok := a.Domain().Intersect(b.Domain())
	if !ok {
		return NewRect(Domain{}, 0)
	}

	ga := a.Grid()
	gb := b.Grid()

	times := mergeBreakpoints(overlap.StartTime, overlap.EndTime,
		ga.Times, gb.Times)
	freqs := mergeBreakpoints(overlap.LowFreq, overlap.HighFreq,
		ga.Freqs, gb.Freqs)

	values := make([][]float64, len(times)-1)
	for i := range values {
		values[i] = make([]float64, len(freqs)-1)
		t := (times[i] + times[i+1]) / 2

		for j := range values[i] {
			f := (freqs[j] + freqs[j+1]) / 2
			values[i][j] = a.Value(t, f) * b.Value(t, f)
		}
	}

	return NewPiecewise(Grid{Times: times, Freqs: freqs, Values: values})
}

// mergeBreakpoints returns the sorted, unique breakpoints of the lists that
// fall within [lo, hi], with lo and hi always included.
func mergeBreakpoints[T ~float64](lo, hi T, lists ...[]T) []T {
	merged := []T{lo, hi}
	for _, list := range lists {
		for _, x := range list {
			if x > lo && x < hi {
				merged = append(merged, x)
			}
		}
	}

	slices.Sort(merged)
	merged = slices.Compact(merged)

	if len(merged) == 1 {
		merged = append(merged, hi)
	}

	return merged
}

// Shift delays the function by dt.
func Shift(fn Function, dt sim.VTimeInSec) Function {
	if r, ok := fn.(*Rect); ok {
		return NewRect(r.domain.Shift(dt), r.value)
	}

	g := fn.Grid()
	for i := range g.Times {
		g.Times[i] += dt
	}

	return NewPiecewise(g)
}

// Scale multiplies the function by a constant factor.
func Scale(fn Function, factor float64) Function {
	if r, ok := fn.(*Rect); ok {
		return NewRect(r.domain, r.value*factor)
	}

	g := fn.Grid()
	for _, row := range g.Values {
		for j := range row {
			row[j] *= factor
		}
	}

	return NewPiecewise(g)
}

// Warp moves and stretches fn in time so that fromStart maps to toStart and
// fromEnd to toEnd. Times in between are mapped linearly. The frequency axis
// is kept.
func Warp(
	fn Function,
	fromStart, fromEnd, toStart, toEnd sim.VTimeInSec,
) Function {
	if fromEnd == fromStart {
		return Shift(fn, toStart-fromStart)
	}

	scale := (toEnd - toStart) / (fromEnd - fromStart)
	warp := func(t sim.VTimeInSec) sim.VTimeInSec {
		switch t {
		case fromStart:
			return toStart
		case fromEnd:
			return toEnd
		}

		return toStart + (t-fromStart)*scale
	}

	if r, ok := fn.(*Rect); ok {
		d := r.domain
		d.StartTime, d.EndTime = warp(d.StartTime), warp(d.EndTime)

		return NewRect(d, r.value)
	}

	g := fn.Grid()
	for i, t := range g.Times {
		g.Times[i] = warp(t)
	}

	return NewPiecewise(g)
}

// MinBandIntegral integrates fn over the frequencies of d, for every time
// slice of fn that overlaps d, and returns the smallest result. The parts of
// d outside of the time domain of fn count as zero. For a power spectral
// density, this is the smallest in-band power in W.
func MinBandIntegral(fn Function, d Domain) float64 {
	domain := fn.Domain()

	overlap, ok := domain.Intersect(d)
	if !ok {
		return 0
	}

	g := fn.Grid()
	i0 := cellIndex(g.Times, overlap.StartTime)
	i1 := cellIndex(g.Times, overlap.EndTime)

	result := math.Inf(1)
	for i := i0; i <= i1; i++ {
		power := rowIntegral(g, i, overlap.LowFreq, overlap.HighFreq)
		result = min(result, power)
	}

	if d.StartTime < domain.StartTime || d.EndTime > domain.EndTime {
		result = min(result, 0)
	}

	return result
}

func rowIntegral(g Grid, i int, lo, hi sim.Freq) float64 {
	sum := 0.0
	for j, v := range g.Values[i] {
		width := min(g.Freqs[j+1], hi) - max(g.Freqs[j], lo)
		if width > 0 {
			sum += v * float64(width)
		}
	}

	return sum
}
