package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an orientation. The zero value is not a valid orientation;
// use Identity instead.
type Quaternion quat.Number

// Identity returns the orientation that does not rotate.
func Identity() Quaternion {
	return Quaternion{Real: 1}
}

// FromEulerAngles creates an orientation from yaw (alpha, around Z), pitch
// (beta, around Y) and roll (gamma, around X), all in radians.
func FromEulerAngles(alpha, beta, gamma float64) Quaternion {
	cy, sy := math.Cos(alpha/2), math.Sin(alpha/2)
	cp, sp := math.Cos(beta/2), math.Sin(beta/2)
	cr, sr := math.Cos(gamma/2), math.Sin(gamma/2)

	return Quaternion{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

func (q Quaternion) number() quat.Number {
	return quat.Number(q)
}

// Normalized returns the unit quaternion pointing in the same direction.
func (q Quaternion) Normalized() Quaternion {
	n := quat.Abs(q.number())
	if n == 0 {
		return Identity()
	}

	return Quaternion(quat.Scale(1/n, q.number()))
}

// Mul composes two rotations, applying o first.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion(quat.Mul(q.number(), o.number()))
}

// Rotate applies the rotation to a coordinate.
func (q Quaternion) Rotate(c Coord) Coord {
	u := q.Normalized().number()
	v := quat.Number{Imag: c.X, Jmag: c.Y, Kmag: c.Z}
	r := quat.Mul(quat.Mul(u, v), quat.Conj(u))

	return Coord{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

func (q Quaternion) dot(o Quaternion) float64 {
	return q.Real*o.Real + q.Imag*o.Imag + q.Jmag*o.Jmag + q.Kmag*o.Kmag
}

// Slerp interpolates spherically between q (alpha = 0) and o (alpha = 1)
// along the shortest arc.
func (q Quaternion) Slerp(o Quaternion, alpha float64) Quaternion {
	a := q.Normalized()
	b := o.Normalized()

	d := a.dot(b)
	if d < 0 {
		b = Quaternion(quat.Scale(-1, b.number()))
		d = -d
	}

	// Nearly parallel; fall back to a normalized lerp.
	if d > 0.9995 {
		r := quat.Add(
			quat.Scale(1-alpha, a.number()),
			quat.Scale(alpha, b.number()),
		)

		return Quaternion(r).Normalized()
	}

	theta0 := math.Acos(d)
	theta := theta0 * alpha
	s0 := math.Cos(theta) - d*math.Sin(theta)/math.Sin(theta0)
	s1 := math.Sin(theta) / math.Sin(theta0)

	return Quaternion(quat.Add(
		quat.Scale(s0, a.number()),
		quat.Scale(s1, b.number()),
	))
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.Real, q.Imag, q.Jmag, q.Kmag)
}
