package function

import "github.com/sarchlab/radiosim/sim"

// Rect is constant over its domain.
type Rect struct {
	domain Domain
	value  float64
}

// NewRect creates a function that is value within the domain.
func NewRect(domain Domain, value float64) *Rect {
	return &Rect{
		domain: domain,
		value:  value,
	}
}

// Value returns the constant inside the domain and 0 outside.
func (r *Rect) Value(t sim.VTimeInSec, f sim.Freq) float64 {
	if r.domain.Contains(t, f) {
		return r.value
	}

	return 0
}

// Domain returns the domain of the function.
func (r *Rect) Domain() Domain {
	return r.domain
}

// Min returns the smallest value in d.
func (r *Rect) Min(d Domain) float64 {
	if _, ok := r.domain.Intersect(d); !ok {
		return 0
	}

	if !r.domain.Covers(d) {
		return min(r.value, 0)
	}

	return r.value
}

// Max returns the largest value in d.
func (r *Rect) Max(d Domain) float64 {
	if _, ok := r.domain.Intersect(d); !ok {
		return 0
	}

	if !r.domain.Covers(d) {
		return max(r.value, 0)
	}

	return r.value
}

// Grid returns a single cell grid.
func (r *Rect) Grid() Grid {
	return Grid{
		Times:  []sim.VTimeInSec{r.domain.StartTime, r.domain.EndTime},
		Freqs:  []sim.Freq{r.domain.LowFreq, r.domain.HighFreq},
		Values: [][]float64{{r.value}},
	}
}
