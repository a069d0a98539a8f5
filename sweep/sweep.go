// Package sweep evaluates the exact and simplified mirror transforms over a
// grid of mirror orientations and measures how far they drift apart.
package sweep

import (
	"fmt"
	"math"

	"github.com/meghashyamc/gimbalmirror/logger"
	"github.com/meghashyamc/gimbalmirror/mirror"
)

// Sample holds every transform evaluated for one mirror orientation. Both
// inverse transforms are applied to the exact forward result.
type Sample struct {
	Mirror                    mirror.AnglePair
	Viewing                   mirror.AnglePair
	ViewingSimplified         mirror.AnglePair
	MirrorRoundTrip           mirror.AnglePair
	MirrorRoundTripSimplified mirror.AnglePair
}

func (s Sample) IsFinite() bool {
	return s.Viewing.IsFinite() && s.ViewingSimplified.IsFinite() &&
		s.MirrorRoundTrip.IsFinite() && s.MirrorRoundTripSimplified.IsFinite()
}

func Evaluate(theta, phi float64) Sample {
	viewing := mirror.MirrorToViewing(theta, phi)
	return Sample{
		Mirror:                    mirror.AnglePair{Theta: theta, Phi: phi},
		Viewing:                   viewing,
		ViewingSimplified:         mirror.MirrorToViewingSimplified(theta, phi),
		MirrorRoundTrip:           mirror.ViewingToMirror(viewing.Theta, viewing.Phi),
		MirrorRoundTripSimplified: mirror.ViewingToMirrorSimplified(viewing.Theta, viewing.Phi),
	}
}

type Result struct {
	Samples []Sample

	// Largest component-wise gap between exact and simplified forward results.
	MaxForwardDeviation float64
	// Largest gap between the input and the exact inverse of the exact forward result.
	MaxRoundTripError float64
	// Same, through the simplified inverse.
	MaxSimplifiedRoundTripError float64

	// Samples with a NaN or Inf anywhere; they stay in Samples but are
	// left out of the maxima above. Singular azimuths (phi = 0) are not
	// counted here: the infinite tangent saturates through atan to -90°, so
	// those samples are finite and show up as large round-trip errors.
	NonFinite int
}

// Series names, in drawing order.
const (
	SeriesViewing                   = "exact forward"
	SeriesViewingSimplified         = "simplified forward"
	SeriesMirrorRoundTrip           = "exact inverse"
	SeriesMirrorRoundTripSimplified = "simplified inverse"
)

var SeriesOrder = []string{
	SeriesViewing,
	SeriesViewingSimplified,
	SeriesMirrorRoundTrip,
	SeriesMirrorRoundTripSimplified,
}

// Series splits the samples into one slice per plotted series.
func (r *Result) Series() map[string][]mirror.AnglePair {
	series := make(map[string][]mirror.AnglePair, len(SeriesOrder))
	for _, s := range r.Samples {
		series[SeriesViewing] = append(series[SeriesViewing], s.Viewing)
		series[SeriesViewingSimplified] = append(series[SeriesViewingSimplified], s.ViewingSimplified)
		series[SeriesMirrorRoundTrip] = append(series[SeriesMirrorRoundTrip], s.MirrorRoundTrip)
		series[SeriesMirrorRoundTripSimplified] = append(series[SeriesMirrorRoundTripSimplified], s.MirrorRoundTripSimplified)
	}
	return series
}

// Run walks theta in the outer loop and phi in the inner loop.
func Run(theta, phi Range, log logger.Logger) (*Result, error) {
	if err := theta.Validate(); err != nil {
		return nil, fmt.Errorf("theta range: %w", err)
	}
	if err := phi.Validate(); err != nil {
		return nil, fmt.Errorf("phi range: %w", err)
	}

	thetas := theta.Values()
	phis := phi.Values()
	result := &Result{Samples: make([]Sample, 0, len(thetas)*len(phis))}

	log.Debug("starting sweep", "theta", theta.String(), "phi", phi.String(), "samples", cap(result.Samples))

	for _, t := range thetas {
		for _, p := range phis {
			sample := Evaluate(t, p)
			result.Samples = append(result.Samples, sample)

			if !sample.IsFinite() {
				result.NonFinite++
				log.Debug("non-finite sample", "mirror", sample.Mirror.String(),
					"viewing", sample.Viewing.String(), "viewingSimplified", sample.ViewingSimplified.String())
				continue
			}

			result.MaxForwardDeviation = math.Max(result.MaxForwardDeviation,
				sample.Viewing.MaxAbsDiff(sample.ViewingSimplified))
			result.MaxRoundTripError = math.Max(result.MaxRoundTripError,
				sample.Mirror.MaxAbsDiff(sample.MirrorRoundTrip))
			result.MaxSimplifiedRoundTripError = math.Max(result.MaxSimplifiedRoundTripError,
				sample.Mirror.MaxAbsDiff(sample.MirrorRoundTripSimplified))
		}
	}

	log.Info("sweep finished",
		"samples", len(result.Samples),
		"nonFinite", result.NonFinite,
		"maxForwardDeviation", result.MaxForwardDeviation,
		"maxRoundTripError", result.MaxRoundTripError,
		"maxSimplifiedRoundTripError", result.MaxSimplifiedRoundTripError,
	)

	return result, nil
}
