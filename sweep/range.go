package sweep

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRange = errors.New("invalid range")

// Range is an inclusive arithmetic progression of angles in degrees.
type Range struct {
	Start float64
	End   float64
	Step  float64
}

func (r Range) Validate() error {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) || math.IsNaN(r.Step) {
		return fmt.Errorf("%w: NaN bound in %s", ErrInvalidRange, r)
	}
	if math.IsInf(r.Start, 0) || math.IsInf(r.End, 0) {
		return fmt.Errorf("%w: infinite bound in %s", ErrInvalidRange, r)
	}
	if r.Step <= 0 || math.IsInf(r.Step, 0) {
		return fmt.Errorf("%w: step must be positive and finite, got %v", ErrInvalidRange, r.Step)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: end %v before start %v", ErrInvalidRange, r.End, r.Start)
	}
	return nil
}

// Values returns Start, Start+Step, ... up to and including End.
// Values are computed as Start+i*Step so steps do not accumulate error.
func (r Range) Values() []float64 {
	if r.Validate() != nil {
		return nil
	}

	// tolerate End landing a hair below an exact multiple of Step
	count := int(math.Floor((r.End-r.Start)/r.Step+1e-9)) + 1
	values := make([]float64, count)
	for i := range values {
		values[i] = r.Start + float64(i)*r.Step
	}
	return values
}

func (r Range) String() string {
	return fmt.Sprintf("[%g..%g step %g]", r.Start, r.End, r.Step)
}
