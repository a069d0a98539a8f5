package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vector is a direction in the gimbal frame: X towards the target,
// Z into the sky, Y completing the right-handed frame.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) r3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vector) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.r3().Dot(other.r3())
}

// reflected = incident - 2*(incident·normal)*normal
// The normal is used as given, callers pass a unit vector.
func (v Vector) Reflect(normal Vector) Vector {
	dotProduct := v.DotProduct(normal)
	return v.Sub(normal.Scale(2 * dotProduct))
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return v.r3().Norm()
}

// AngleTo calculates the angle between this vector and another vector in radians.
// The cosine is not clamped: rounding that pushes it outside [-1, 1] gives NaN,
// and so does a zero-length operand.
func (v Vector) AngleTo(other Vector) float64 {
	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := v.DotProduct(other) / (v.Magnitude() * other.Magnitude())
	return math.Acos(cosTheta)
}

// AngleToDegrees is AngleTo in degrees.
func (v Vector) AngleToDegrees(other Vector) float64 {
	return RadToDeg(v.AngleTo(other))
}

// Normalize returns the unit vector along v; the zero vector stays zero.
func (v Vector) Normalize() Vector {
	return fromR3(v.r3().Normalize())
}

func (v Vector) Add(other Vector) Vector {
	return fromR3(v.r3().Add(other.r3()))
}

func (v Vector) Sub(other Vector) Vector {
	return fromR3(v.r3().Sub(other.r3()))
}

func (v Vector) Scale(factor float64) Vector {
	return fromR3(v.r3().Mul(factor))
}
