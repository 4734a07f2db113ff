package mobility

import (
	"github.com/sarchlab/radiosim/phy/geometry"
)

// Stationary is a node that never moves.
type Stationary struct {
	position    geometry.Coord
	orientation geometry.Quaternion
}

// NewStationary creates a stationary mobility.
func NewStationary(
	position geometry.Coord,
	orientation geometry.Quaternion,
) *Stationary {
	return &Stationary{
		position:    position,
		orientation: orientation,
	}
}

// CurrentPosition returns the fixed position.
func (s *Stationary) CurrentPosition() geometry.Coord {
	return s.position
}

// CurrentAngularPosition returns the fixed orientation.
func (s *Stationary) CurrentAngularPosition() geometry.Quaternion {
	return s.orientation
}
