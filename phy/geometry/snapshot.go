package geometry

import "fmt"

// Snapshot is the position and orientation of a node at one instant.
type Snapshot struct {
	Position    Coord
	Orientation Quaternion
}

// Interpolate returns the snapshot between s (alpha = 0) and o (alpha = 1).
func (s Snapshot) Interpolate(o Snapshot, alpha float64) Snapshot {
	return Snapshot{
		Position:    s.Position.Lerp(o.Position, alpha),
		Orientation: s.Orientation.Slerp(o.Orientation, alpha),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s %s", s.Position, s.Orientation)
}
