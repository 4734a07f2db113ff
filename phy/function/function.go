// Package function provides power functions over time and frequency.
//
// A Function has a bounded domain and is zero outside of it. Functions are
// immutable once built and can be evaluated concurrently.
package function

import (
	"fmt"

	"github.com/sarchlab/radiosim/sim"
)

// Domain is a closed rectangle in time and frequency.
type Domain struct {
	StartTime, EndTime sim.VTimeInSec
	LowFreq, HighFreq  sim.Freq
}

// BandDomain returns the domain covering [start, end] and the band centered
// at center with the given bandwidth.
func BandDomain(
	start, end sim.VTimeInSec,
	center, bandwidth sim.Freq,
) Domain {
	return Domain{
		StartTime: start,
		EndTime:   end,
		LowFreq:   center - bandwidth/2,
		HighFreq:  center + bandwidth/2,
	}
}

// Contains tells if a point is inside the domain, borders included.
func (d Domain) Contains(t sim.VTimeInSec, f sim.Freq) bool {
	return t >= d.StartTime && t <= d.EndTime &&
		f >= d.LowFreq && f <= d.HighFreq
}

// Covers tells if o is fully inside d.
func (d Domain) Covers(o Domain) bool {
	return o.StartTime >= d.StartTime && o.EndTime <= d.EndTime &&
		o.LowFreq >= d.LowFreq && o.HighFreq <= d.HighFreq
}

// Intersect returns the overlap of two domains. The second return value is
// false if they do not overlap.
func (d Domain) Intersect(o Domain) (Domain, bool) {
	r := Domain{
		StartTime: max(d.StartTime, o.StartTime),
		EndTime:   min(d.EndTime, o.EndTime),
		LowFreq:   max(d.LowFreq, o.LowFreq),
		HighFreq:  min(d.HighFreq, o.HighFreq),
	}

	if r.StartTime > r.EndTime || r.LowFreq > r.HighFreq {
		return Domain{}, false
	}

	return r, true
}

// Shift moves the domain in time.
func (d Domain) Shift(dt sim.VTimeInSec) Domain {
	d.StartTime += dt
	d.EndTime += dt

	return d
}

func (d Domain) String() string {
	return fmt.Sprintf("[%.10f, %.10f] s x [%s, %s]",
		d.StartTime, d.EndTime, d.LowFreq, d.HighFreq)
}

// Grid is a piecewise constant description of a function. Values[i][j] is
// the value for Times[i] <= t < Times[i+1] and Freqs[j] <= f < Freqs[j+1].
// The last row and column also include their upper border.
type Grid struct {
	Times  []sim.VTimeInSec
	Freqs  []sim.Freq
	Values [][]float64
}

// A Function maps time and frequency to a value, usually a power spectral
// density in W/Hz.
type Function interface {
	// Value evaluates the function. It returns 0 outside of the domain.
	Value(t sim.VTimeInSec, f sim.Freq) float64

	// Domain returns where the function may be non-zero.
	Domain() Domain

	// Min returns the smallest value the function takes in d.
	Min(d Domain) float64

	// Max returns the largest value the function takes in d.
	Max(d Domain) float64

	// Grid returns the piecewise constant description of the function.
	Grid() Grid
}
