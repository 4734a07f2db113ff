package signal

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// Arrival tells when and where a transmission reaches a receiver.
type Arrival struct {
	StartTime     sim.VTimeInSec
	EndTime       sim.VTimeInSec
	StartSnapshot geometry.Snapshot
	EndSnapshot   geometry.Snapshot
}

// A Reception is a transmission as observed by one receiver.
type Reception interface {
	RadioName() string
	Transmission() *Transmission

	StartTime() sim.VTimeInSec
	EndTime() sim.VTimeInSec
	StartSnapshot() geometry.Snapshot
	EndSnapshot() geometry.Snapshot
	CenterFrequency() sim.Freq
	Bandwidth() sim.Freq

	// MinPower returns the smallest received power in [start, end].
	MinPower(start, end sim.VTimeInSec) unit.Power

	// PowerFunction returns the received power spectral density in W/Hz.
	PowerFunction() function.Function

	String() string
	Print(w io.Writer, level int)
}

type receptionBase struct {
	radioName    string
	transmission *Transmission
	arrival      Arrival
}

func (r *receptionBase) RadioName() string {
	return r.radioName
}

func (r *receptionBase) Transmission() *Transmission {
	return r.transmission
}

func (r *receptionBase) StartTime() sim.VTimeInSec {
	return r.arrival.StartTime
}

func (r *receptionBase) EndTime() sim.VTimeInSec {
	return r.arrival.EndTime
}

func (r *receptionBase) CenterFrequency() sim.Freq {
	return r.transmission.CenterFrequency()
}

func (r *receptionBase) Bandwidth() sim.Freq {
	return r.transmission.Bandwidth()
}

func (r *receptionBase) StartSnapshot() geometry.Snapshot {
	return r.arrival.StartSnapshot
}

func (r *receptionBase) EndSnapshot() geometry.Snapshot {
	return r.arrival.EndSnapshot
}

func (r *receptionBase) domain() function.Domain {
	return function.BandDomain(r.arrival.StartTime, r.arrival.EndTime,
		r.CenterFrequency(), r.Bandwidth())
}

func (r *receptionBase) printHeader(w io.Writer, kind string, level int) {
	fmt.Fprintf(w, "%s reception of transmission %s at %s",
		kind, r.transmission.ID(), r.radioName)

	if level < 1 {
		return
	}

	fmt.Fprintf(w, "\n  time: %.10f - %.10f s",
		r.arrival.StartTime, r.arrival.EndTime)
	fmt.Fprintf(w, "\n  center: %s, bandwidth: %s",
		r.CenterFrequency(), r.Bandwidth())
}

func (r *receptionBase) printSnapshots(w io.Writer, level int) {
	if level < 2 {
		return
	}

	fmt.Fprintf(w, "\n  start: %s", r.arrival.StartSnapshot)
	fmt.Fprintf(w, "\n  end: %s", r.arrival.EndSnapshot)
}

// ScalarReception carries one received power for the whole reception.
type ScalarReception struct {
	receptionBase

	power unit.Power
}

// NewScalarReception creates a scalar reception of an already attenuated
// power.
func NewScalarReception(
	radioName string,
	tx *Transmission,
	arrival Arrival,
	power unit.Power,
) *ScalarReception {
	return &ScalarReception{
		receptionBase: receptionBase{
			radioName:    radioName,
			transmission: tx,
			arrival:      arrival,
		},
		power: power,
	}
}

// Power returns the received power.
func (r *ScalarReception) Power() unit.Power {
	return r.power
}

// MinPower returns the received power. The power is constant during the
// reception, so the interval is not considered.
func (r *ScalarReception) MinPower(_, _ sim.VTimeInSec) unit.Power {
	return r.power
}

// PowerFunction spreads the received power evenly over the band.
func (r *ScalarReception) PowerFunction() function.Function {
	return function.NewRect(r.domain(),
		float64(r.power)/float64(r.Bandwidth()))
}

func (r *ScalarReception) String() string {
	sb := new(strings.Builder)
	r.Print(sb, 0)

	return sb.String()
}

// Print writes a summary of the reception.
func (r *ScalarReception) Print(w io.Writer, level int) {
	r.printHeader(w, "Scalar", level)

	if level >= 1 {
		fmt.Fprintf(w, "\n  power: %s", r.power)
	}

	r.printSnapshots(w, level)
}

// DimensionalReception carries the received power spectral density as a
// function of time and frequency.
type DimensionalReception struct {
	receptionBase

	powerFunction function.Function
}

// NewDimensionalReception creates a dimensional reception.
func NewDimensionalReception(
	radioName string,
	tx *Transmission,
	arrival Arrival,
	fn function.Function,
) *DimensionalReception {
	return &DimensionalReception{
		receptionBase: receptionBase{
			radioName:    radioName,
			transmission: tx,
			arrival:      arrival,
		},
		powerFunction: fn,
	}
}

// PowerFunction returns the received power spectral density.
func (r *DimensionalReception) PowerFunction() function.Function {
	return r.powerFunction
}

// MinPower returns the smallest in-band power of the time slices that
// overlap [start, end]. Each slice is integrated over the reception band, so
// empty guard subcarriers do not pull the result to zero. Times outside of
// the power function count as zero.
func (r *DimensionalReception) MinPower(start, end sim.VTimeInSec) unit.Power {
	d := function.BandDomain(start, end, r.CenterFrequency(), r.Bandwidth())

	return unit.Power(function.MinBandIntegral(r.powerFunction, d))
}

func (r *DimensionalReception) String() string {
	sb := new(strings.Builder)
	r.Print(sb, 0)

	return sb.String()
}

// Print writes a summary of the reception.
func (r *DimensionalReception) Print(w io.Writer, level int) {
	r.printHeader(w, "Dimensional", level)

	if level >= 1 {
		fmt.Fprintf(w, "\n  min power: %s",
			r.MinPower(r.arrival.StartTime, r.arrival.EndTime))
		fmt.Fprintf(w, "\n  power function: %s",
			r.powerFunction.Domain())
	}

	r.printSnapshots(w, level)
}
