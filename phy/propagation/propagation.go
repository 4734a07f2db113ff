// Package propagation computes when a transmission reaches a receiver and
// how much of its power is left.
package propagation

import (
	"math"

	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// SpeedOfLight is the propagation speed of radio waves in vacuum, in m/s.
const SpeedOfLight = 299792458.0

// A Propagation computes the arrival of a transmission at a receiver.
type Propagation interface {
	ComputeArrival(
		tx *signal.Transmission,
		rx mobility.Mobility,
	) signal.Arrival
}

// ConstantSpeed propagates signals in straight lines at a constant speed.
type ConstantSpeed struct {
	Speed float64
}

// ComputeArrival delays the start and the end of the transmission by the
// distance to the receiver divided by the speed.
func (p ConstantSpeed) ComputeArrival(
	tx *signal.Transmission,
	rx mobility.Mobility,
) signal.Arrival {
	rxStart := mobility.SnapshotAt(rx, tx.StartTime())
	startDistance := tx.StartSnapshot().Position.Distance(rxStart.Position)
	startTime := tx.StartTime() + sim.VTimeInSec(startDistance/p.Speed)

	rxEnd := mobility.SnapshotAt(rx, tx.EndTime())
	endDistance := tx.EndSnapshot().Position.Distance(rxEnd.Position)
	endTime := tx.EndTime() + sim.VTimeInSec(endDistance/p.Speed)

	return signal.Arrival{
		StartTime:     startTime,
		EndTime:       endTime,
		StartSnapshot: mobility.SnapshotAt(rx, startTime),
		EndSnapshot:   mobility.SnapshotAt(rx, endTime),
	}
}

// A PathLoss computes the linear power gain of a path.
type PathLoss interface {
	Attenuation(tx *signal.Transmission, distance float64) float64
}

// FreeSpace is the Friis free space path loss with a configurable exponent
// and system loss.
type FreeSpace struct {
	Alpha      float64
	SystemLoss float64
}

// Attenuation returns (lambda / (4 pi d))^alpha / L, never more than 1.
func (f FreeSpace) Attenuation(
	tx *signal.Transmission,
	distance float64,
) float64 {
	if distance <= 0 {
		return 1
	}

	systemLoss := f.SystemLoss
	if systemLoss < 1 {
		systemLoss = 1
	}

	waveLength := SpeedOfLight / float64(tx.CenterFrequency())
	gain := math.Pow(waveLength/(4*math.Pi*distance), f.Alpha) / systemLoss

	return math.Min(gain, 1)
}
