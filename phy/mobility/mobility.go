// Package mobility provides the position and orientation of radios over
// time.
package mobility

import (
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/sim"
)

// Mobility reports where a node is and where it faces now.
type Mobility interface {
	CurrentPosition() geometry.Coord
	CurrentAngularPosition() geometry.Quaternion
}

// TimedMobility can also report the position and orientation at any instant.
type TimedMobility interface {
	Mobility

	PositionAt(t sim.VTimeInSec) geometry.Coord
	AngularPositionAt(t sim.VTimeInSec) geometry.Quaternion
}

// SnapshotAt takes a snapshot of the mobility at time t. Providers that are
// not timed are read at their current state.
func SnapshotAt(m Mobility, t sim.VTimeInSec) geometry.Snapshot {
	if tm, ok := m.(TimedMobility); ok {
		return geometry.Snapshot{
			Position:    tm.PositionAt(t),
			Orientation: tm.AngularPositionAt(t),
		}
	}

	return geometry.Snapshot{
		Position:    m.CurrentPosition(),
		Orientation: m.CurrentAngularPosition(),
	}
}
