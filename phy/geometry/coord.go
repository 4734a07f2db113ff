// Package geometry provides the positions and orientations recorded in
// transmission and reception snapshots.
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coord is a position in meters.
type Coord struct {
	X, Y, Z float64
}

// CoordFromVec converts a gonum vector into a coordinate.
func CoordFromVec(v r3.Vec) Coord {
	return Coord{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec returns the coordinate as a gonum vector.
func (c Coord) Vec() r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return CoordFromVec(r3.Add(c.Vec(), o.Vec()))
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return CoordFromVec(r3.Sub(c.Vec(), o.Vec()))
}

// Distance returns the euclidean distance between two coordinates.
func (c Coord) Distance(o Coord) float64 {
	return r3.Norm(r3.Sub(c.Vec(), o.Vec()))
}

// Lerp interpolates linearly between c (alpha = 0) and o (alpha = 1).
func (c Coord) Lerp(o Coord, alpha float64) Coord {
	d := r3.Sub(o.Vec(), c.Vec())

	return CoordFromVec(r3.Add(c.Vec(), r3.Scale(alpha, d)))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g, %g) m", c.X, c.Y, c.Z)
}
