package pie3d

import (
	"fmt"
	"math"
)

const (
	twoPi       = 2 * math.Pi
	halfPi      = math.Pi / 2
	threeHalfPi = 3 * math.Pi / 2
)

// Span is the raw angular interval of one slice. Raw angles are unwrapped:
// spans of consecutive slices are contiguous and together cover [0, 2π].
type Span struct {
	Start, Stop float64
}

// Mid returns the bisector angle of the span.
func (s Span) Mid() float64 {
	return (s.Start + s.Stop) / 2
}

// Normalize converts magnitudes into angular spans proportional to their
// share of the total.
//
// Both ends of every span are derived from the running sum, so the stop of
// slice i and the start of slice i+1 are the same float and the last stop is
// exactly 2π. It returns ErrZeroTotal when the values sum to zero (or there
// are none) and ErrNegativeValue for negative or non-finite values.
func Normalize(values []float64) ([]Span, error) {
	total := 0.0
	for i, v := range values {
		if v < 0 || !finite(v) {
			return nil, fmt.Errorf("%w: slice %d has value %v", ErrNegativeValue, i, v)
		}
		total += v
	}
	if total == 0 {
		return nil, ErrZeroTotal
	}
	if !finite(total) {
		return nil, fmt.Errorf("%w: total overflows", ErrNegativeValue)
	}

	spans := make([]Span, len(values))
	sum := 0.0
	last := 0.0
	for i, v := range values {
		sum += v
		// sum accumulates in the same order as total, so the last
		// ratio is exactly 1.
		stop := twoPi * (sum / total)
		spans[i] = Span{Start: last, Stop: stop}
		last = stop
	}
	return spans, nil
}

// Canonical reduces an angle into [0, 2π).
func Canonical(a float64) float64 {
	c := math.Mod(a, twoPi)
	if c < 0 {
		c += twoPi
	}
	// c+2π can round up to exactly 2π for tiny negative remainders.
	if c >= twoPi {
		c = 0
	}
	return c
}
