package geometry

import "math"

func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}

// FromSpherical converts a polar angle theta (from +Z) and an azimuth phi
// (from +X towards +Y), both in radians, into a unit vector.
func FromSpherical(theta, phi float64) Vector {
	sinTheta := math.Sin(theta)
	return Vector{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: math.Cos(theta),
	}
}
