package function

import (
	"log"
	"sort"

	"github.com/sarchlab/radiosim/sim"
)

// Piecewise is constant on each cell of a grid. Evaluation uses a binary
// search on each axis.
type Piecewise struct {
	grid Grid
}

// NewPiecewise creates a piecewise function from a grid. The grid is copied.
func NewPiecewise(g Grid) *Piecewise {
	gridMustBeValid(g)

	p := &Piecewise{}
	p.grid.Times = append([]sim.VTimeInSec(nil), g.Times...)
	p.grid.Freqs = append([]sim.Freq(nil), g.Freqs...)
	p.grid.Values = make([][]float64, len(g.Values))
	for i, row := range g.Values {
		p.grid.Values[i] = append([]float64(nil), row...)
	}

	return p
}

func gridMustBeValid(g Grid) {
	if len(g.Times) < 2 || len(g.Freqs) < 2 {
		log.Panic("grid needs at least two breakpoints on each axis")
	}

	if len(g.Values) != len(g.Times)-1 {
		log.Panicf("grid has %d time breakpoints but %d rows",
			len(g.Times), len(g.Values))
	}

	for i, row := range g.Values {
		if len(row) != len(g.Freqs)-1 {
			log.Panicf("grid row %d has %d values, want %d",
				i, len(row), len(g.Freqs)-1)
		}
	}

	if !sort.SliceIsSorted(g.Times, func(i, j int) bool {
		return g.Times[i] < g.Times[j]
	}) {
		log.Panic("grid times are not sorted")
	}

	if !sort.SliceIsSorted(g.Freqs, func(i, j int) bool {
		return g.Freqs[i] < g.Freqs[j]
	}) {
		log.Panic("grid frequencies are not sorted")
	}
}

// cellIndex returns the index of the cell holding x. The caller makes sure x
// is within the breakpoints.
func cellIndex[T ~float64](breakpoints []T, x T) int {
	i := sort.Search(len(breakpoints), func(k int) bool {
		return breakpoints[k] > x
	}) - 1

	return min(max(i, 0), len(breakpoints)-2)
}

// Domain returns the domain of the function.
func (p *Piecewise) Domain() Domain {
	return Domain{
		StartTime: p.grid.Times[0],
		EndTime:   p.grid.Times[len(p.grid.Times)-1],
		LowFreq:   p.grid.Freqs[0],
		HighFreq:  p.grid.Freqs[len(p.grid.Freqs)-1],
	}
}

// Value returns the value of the cell holding (t, f), or 0 outside of the
// domain.
func (p *Piecewise) Value(t sim.VTimeInSec, f sim.Freq) float64 {
	if !p.Domain().Contains(t, f) {
		return 0
	}

	i := cellIndex(p.grid.Times, t)
	j := cellIndex(p.grid.Freqs, f)

	return p.grid.Values[i][j]
}

// Min returns the smallest value of the cells overlapping d.
func (p *Piecewise) Min(d Domain) float64 {
	return p.reduce(d, func(a, b float64) float64 { return min(a, b) })
}

// Max returns the largest value of the cells overlapping d.
func (p *Piecewise) Max(d Domain) float64 {
	return p.reduce(d, func(a, b float64) float64 { return max(a, b) })
}

func (p *Piecewise) reduce(d Domain, pick func(a, b float64) float64) float64 {
	domain := p.Domain()

	overlap, ok := domain.Intersect(d)
	if !ok {
		return 0
	}

	i0 := cellIndex(p.grid.Times, overlap.StartTime)
	i1 := cellIndex(p.grid.Times, overlap.EndTime)
	j0 := cellIndex(p.grid.Freqs, overlap.LowFreq)
	j1 := cellIndex(p.grid.Freqs, overlap.HighFreq)

	result := p.grid.Values[i0][j0]
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			result = pick(result, p.grid.Values[i][j])
		}
	}

	if !domain.Covers(d) {
		result = pick(result, 0)
	}

	return result
}

// Grid returns a copy of the grid of the function.
func (p *Piecewise) Grid() Grid {
	return NewPiecewise(p.grid).grid
}
