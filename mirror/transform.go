// Package mirror converts between the orientation of a gimbal-mounted mirror
// and the direction of the ray it reflects.
//
// Angles cross the package boundary in degrees. Theta is the polar angle
// from the sky axis (0° looks into the sky, 90° at the horizon) and phi is
// the azimuth from the target axis. All four transforms recover azimuths
// with a single-branch arctangent, so results are only meaningful while the
// relevant x component is positive. Domain errors surface as NaN or ±Inf.
package mirror

import (
	"math"

	"github.com/meghashyamc/gimbalmirror/geometry"
)

var (
	// IncidentRay is the fixed line of sight hitting the mirror.
	IncidentRay = geometry.Vector{X: 0, Y: -1, Z: 0}
	// TargetAxis is where phi = 0 points.
	TargetAxis = geometry.Vector{X: 1, Y: 0, Z: 0}
	// SkyAxis is where theta = 0 points.
	SkyAxis = geometry.Vector{X: 0, Y: 0, Z: 1}
)

// MirrorToViewing reflects the incident ray off a mirror whose normal points
// along (theta, phi) and returns the direction of the reflected ray.
func MirrorToViewing(theta, phi float64) AnglePair {
	normal := geometry.FromSpherical(geometry.DegToRad(theta), geometry.DegToRad(phi))
	out := IncidentRay.Reflect(normal)

	return AnglePair{
		Theta: geometry.RadToDeg(math.Acos(out.Z)),
		Phi:   geometry.RadToDeg(math.Atan(out.Y / out.X)),
	}
}

// MirrorToViewingSimplified is the closed-form counterpart of MirrorToViewing.
// It diverges where sin(2·phi) or 1-cos(2·theta) is zero.
func MirrorToViewingSimplified(theta, phi float64) AnglePair {
	thetaRad := geometry.DegToRad(theta)
	phiRad := geometry.DegToRad(phi)

	return AnglePair{
		Theta: geometry.RadToDeg(math.Acos(math.Sin(2*thetaRad) * math.Sin(phiRad))),
		Phi:   geometry.RadToDeg(math.Atan(simplifiedAzimuthTangent(thetaRad, phiRad))),
	}
}

// tan(phi) - 1/(sin²(theta)·sin(2·phi)), with sin²(theta) written as 0.5·(1-cos(2·theta)).
func simplifiedAzimuthTangent(thetaRad, phiRad float64) float64 {
	return math.Tan(phiRad) - 1/(0.5*(1-math.Cos(2*thetaRad))*math.Sin(2*phiRad))
}

// ViewingToMirror returns the mirror orientation that sends the incident ray
// along (theta, phi).
func ViewingToMirror(theta, phi float64) AnglePair {
	e := geometry.FromSpherical(geometry.DegToRad(theta), geometry.DegToRad(phi))

	// out - in is parallel to the normal; in is -Y.
	normal := geometry.Vector{X: e.X, Y: 1 + e.Y, Z: e.Z}.Normalize()

	return AnglePair{
		Theta: geometry.RadToDeg(math.Acos(normal.Z)),
		Phi:   geometry.RadToDeg(math.Atan(normal.Y / normal.X)),
	}
}

// ViewingToMirrorSimplified matches ViewingToMirror but folds the
// normalization into the arccosine and takes the azimuth from the
// unnormalized components.
func ViewingToMirrorSimplified(theta, phi float64) AnglePair {
	e := geometry.FromSpherical(geometry.DegToRad(theta), geometry.DegToRad(phi))
	norm := math.Sqrt(e.X*e.X + (1+e.Y)*(1+e.Y) + e.Z*e.Z)

	return AnglePair{
		Theta: geometry.RadToDeg(math.Acos(e.Z * 1 / norm)),
		Phi:   geometry.RadToDeg(math.Atan((1 + e.Y) / e.X)),
	}
}
