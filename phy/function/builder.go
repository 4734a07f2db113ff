package function

import (
	"log"

	"github.com/sarchlab/radiosim/sim"
)

// A Builder creates the power function of a transmission over
// [start, end] x [center - bandwidth/2, center + bandwidth/2].
type Builder interface {
	Build(
		start, end sim.VTimeInSec,
		center, bandwidth sim.Freq,
		value float64,
	) Function
}

// FlatBuilder builds functions that are constant over the whole domain.
type FlatBuilder struct{}

// Build returns a Rect holding value.
func (FlatBuilder) Build(
	start, end sim.VTimeInSec,
	center, bandwidth sim.Freq,
	value float64,
) Function {
	return NewRect(BandDomain(start, end, center, bandwidth), value)
}

// Segment sets the gain of one part of an axis. Until is the end of the
// segment relative to the axis, between 0 and 1.
type Segment struct {
	Until float64
	Gain  float64
}

// A Profile splits an axis into segments. The last segment ends at 1.
type Profile []Segment

// FlatProfile keeps the same gain along the axis.
var FlatProfile = Profile{{Until: 1, Gain: 1}}

// RampProfile rises at the start and falls at the end of a transmission.
var RampProfile = Profile{
	{Until: 0.02, Gain: 0.5},
	{Until: 0.98, Gain: 1},
	{Until: 1, Gain: 0.5},
}

// OFDMSubcarrierProfile leaves the 6 lower and 5 upper guard subcarriers of
// a 64 subcarrier OFDM channel empty. The used subcarriers carry all the
// power.
var OFDMSubcarrierProfile = Profile{
	{Until: 6.0 / 64, Gain: 0},
	{Until: 59.0 / 64, Gain: 64.0 / 53},
	{Until: 1, Gain: 0},
}

func profileMustBeValid(p Profile) {
	if len(p) == 0 {
		log.Panic("profile must have at least one segment")
	}

	prev := 0.0
	for _, s := range p {
		if s.Until < prev {
			log.Panicf("profile segment ends at %g before %g", s.Until, prev)
		}
		prev = s.Until
	}

	if p[len(p)-1].Until != 1 {
		log.Panic("the last profile segment must end at 1")
	}
}

// ShapedBuilder multiplies the value with a time profile and a frequency
// profile.
type ShapedBuilder struct {
	timeProfile Profile
	freqProfile Profile
}

// NewShapedBuilder creates a ShapedBuilder.
func NewShapedBuilder(timeProfile, freqProfile Profile) *ShapedBuilder {
	profileMustBeValid(timeProfile)
	profileMustBeValid(freqProfile)

	return &ShapedBuilder{
		timeProfile: timeProfile,
		freqProfile: freqProfile,
	}
}

// Build returns a Piecewise function.
func (b *ShapedBuilder) Build(
	start, end sim.VTimeInSec,
	center, bandwidth sim.Freq,
	value float64,
) Function {
	domain := BandDomain(start, end, center, bandwidth)

	times := []sim.VTimeInSec{start}
	for _, s := range b.timeProfile[:len(b.timeProfile)-1] {
		times = append(times, start+sim.VTimeInSec(s.Until)*(end-start))
	}
	times = append(times, end)

	freqs := []sim.Freq{domain.LowFreq}
	for _, s := range b.freqProfile[:len(b.freqProfile)-1] {
		freqs = append(freqs, domain.LowFreq+sim.Freq(s.Until)*bandwidth)
	}
	freqs = append(freqs, domain.HighFreq)

	values := make([][]float64, len(b.timeProfile))
	for i, ts := range b.timeProfile {
		values[i] = make([]float64, len(b.freqProfile))
		for j, fs := range b.freqProfile {
			values[i][j] = value * ts.Gain * fs.Gain
		}
	}

	return NewPiecewise(Grid{Times: times, Freqs: freqs, Values: values})
}
