package pie3d

import "math"

// ArcStep is the largest angular distance between two consecutive samples
// of an elliptical arc, in radians.
const ArcStep = 0.01

// ArcDirection selects the sweep direction of an arc.
type ArcDirection int

const (
	// Positive sweeps with increasing angles.
	Positive ArcDirection = iota
	// Negative sweeps with decreasing angles.
	Negative
)

// ArcTo appends the positive arc of the ellipse (center, rx, ry) from start
// to stop. If stop < start it is moved up by whole turns until it is not.
// The first sample is joined to the current point with a line.
func ArcTo(p *Path, center Point, rx, ry, start, stop float64) {
	pts := SampleArc(center, rx, ry, start, stop, Positive)
	for _, pt := range pts {
		p.LineTo(pt.X, pt.Y)
	}
}

// ArcNegativeTo appends the negative arc of the ellipse from start to stop.
// If stop > start it is moved down by whole turns until it is not.
// The arc opens a new sub-path at its first sample.
func ArcNegativeTo(p *Path, center Point, rx, ry, start, stop float64) {
	pts := SampleArc(center, rx, ry, start, stop, Negative)
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
}

// SampleArc returns the polyline approximation of an elliptical arc.
//
// The first point is exactly at start and the last exactly at stop. The
// interval between them is divided into equal steps no larger than ArcStep.
// Interior angles are computed from the interval bounds rather than by
// accumulation, so sampling a→b positively and b→a negatively yields the
// same points in reverse order.
func SampleArc(center Point, rx, ry, start, stop float64, dir ArcDirection) []Point {
	if dir == Positive {
		for stop < start {
			stop += twoPi
		}
	} else {
		for stop > start {
			stop -= twoPi
		}
	}

	lo, hi := start, stop
	if lo > hi {
		lo, hi = hi, lo
	}
	n := int(math.Ceil((hi - lo) / ArcStep))
	if n < 1 {
		n = 1
	}

	angles := make([]float64, n+1)
	angles[0] = lo
	angles[n] = hi
	for i := 1; i < n; i++ {
		angles[i] = lo + (hi-lo)*float64(i)/float64(n)
	}

	pts := make([]Point, n+1)
	for i, a := range angles {
		j := i
		if dir == Negative {
			j = n - i
		}
		pts[j] = EllipsePoint(center, rx, ry, a)
	}
	return pts
}
