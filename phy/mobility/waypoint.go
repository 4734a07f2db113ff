package mobility

import (
	"log"
	"sort"

	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/sim"
)

// A Waypoint pins a snapshot to a time.
type Waypoint struct {
	Time     sim.VTimeInSec
	Snapshot geometry.Snapshot
}

// WaypointMobility moves a node through a list of waypoints. Positions are
// interpolated linearly and orientations spherically between waypoints. The
// node rests at the first waypoint before it and at the last one after it.
type WaypointMobility struct {
	timeTeller sim.TimeTeller
	waypoints  []Waypoint
}

// NewWaypointMobility creates a WaypointMobility. The waypoints must be sorted
// by time.
func NewWaypointMobility(
	timeTeller sim.TimeTeller,
	waypoints []Waypoint,
) *WaypointMobility {
	if len(waypoints) == 0 {
		log.Panic("waypoint mobility needs at least one waypoint")
	}

	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Time < waypoints[i-1].Time {
			log.Panicf("waypoint %d at %.10f is earlier than the previous one",
				i, waypoints[i].Time)
		}
	}

	m := &WaypointMobility{
		timeTeller: timeTeller,
		waypoints:  make([]Waypoint, len(waypoints)),
	}
	copy(m.waypoints, waypoints)

	return m
}

// SnapshotAt returns the interpolated snapshot at time t.
func (m *WaypointMobility) SnapshotAt(t sim.VTimeInSec) geometry.Snapshot {
	i := sort.Search(len(m.waypoints), func(i int) bool {
		return m.waypoints[i].Time > t
	})

	if i == 0 {
		return m.waypoints[0].Snapshot
	}

	if i == len(m.waypoints) {
		return m.waypoints[len(m.waypoints)-1].Snapshot
	}

	prev := m.waypoints[i-1]
	next := m.waypoints[i]
	alpha := float64((t - prev.Time) / (next.Time - prev.Time))

	return prev.Snapshot.Interpolate(next.Snapshot, alpha)
}

// PositionAt returns the position at time t.
func (m *WaypointMobility) PositionAt(t sim.VTimeInSec) geometry.Coord {
	return m.SnapshotAt(t).Position
}

// AngularPositionAt returns the orientation at time t.
func (m *WaypointMobility) AngularPositionAt(
	t sim.VTimeInSec,
) geometry.Quaternion {
	return m.SnapshotAt(t).Orientation
}

// CurrentPosition returns the position at the current simulation time.
func (m *WaypointMobility) CurrentPosition() geometry.Coord {
	return m.PositionAt(m.timeTeller.CurrentTime())
}

// CurrentAngularPosition returns the orientation at the current simulation
// time.
func (m *WaypointMobility) CurrentAngularPosition() geometry.Quaternion {
	return m.AngularPositionAt(m.timeTeller.CurrentTime())
}
