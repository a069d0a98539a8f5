package mirror

import (
	"fmt"
	"math"
)

// AnglePair is a direction in degrees: either a mirror orientation or a
// viewing direction, depending on which side of a transform it sits.
type AnglePair struct {
	Theta float64
	Phi   float64
}

func (a AnglePair) IsFinite() bool {
	return !math.IsNaN(a.Theta) && !math.IsInf(a.Theta, 0) &&
		!math.IsNaN(a.Phi) && !math.IsInf(a.Phi, 0)
}

// MaxAbsDiff returns the larger of the per-component absolute differences.
// NaN in either pair propagates.
func (a AnglePair) MaxAbsDiff(other AnglePair) float64 {
	dTheta := math.Abs(a.Theta - other.Theta)
	dPhi := math.Abs(a.Phi - other.Phi)
	if math.IsNaN(dTheta) || math.IsNaN(dPhi) {
		return math.NaN()
	}
	return math.Max(dTheta, dPhi)
}

func (a AnglePair) String() string {
	return fmt.Sprintf("(θ=%.6f°, φ=%.6f°)", a.Theta, a.Phi)
}
