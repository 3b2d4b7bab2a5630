// Package clip cuts polygons against half-planes. The vector backends use it
// to split a fill into strips along a gradient axis.
package clip

import (
	"math"

	"github.com/gogpu/pie3d"
)

// HalfPlane keeps the part of the closed polygon poly where side is
// non-negative (Sutherland-Hodgman against a single edge). side must be
// affine in the point.
func HalfPlane(poly []pie3d.Point, side func(pie3d.Point) float64) []pie3d.Point {
	if len(poly) == 0 {
		return nil
	}
	out := make([]pie3d.Point, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	sp := side(prev)
	for _, cur := range poly {
		sc := side(cur)
		switch {
		case sc >= 0 && sp >= 0:
			out = append(out, cur)
		case sc >= 0:
			out = append(out, intersect(prev, cur, sp, sc), cur)
		case sp >= 0:
			out = append(out, intersect(prev, cur, sp, sc))
		}
		prev, sp = cur, sc
	}
	return out
}

// Slab keeps the part of poly whose offset lies in [lo, hi]. Infinite
// bounds skip the matching cut.
func Slab(poly []pie3d.Point, offset func(pie3d.Point) float64, lo, hi float64) []pie3d.Point {
	if !math.IsInf(lo, -1) {
		poly = HalfPlane(poly, func(p pie3d.Point) float64 { return offset(p) - lo })
	}
	if !math.IsInf(hi, 1) {
		poly = HalfPlane(poly, func(p pie3d.Point) float64 { return hi - offset(p) })
	}
	return poly
}

// Area returns the unsigned area of the closed polygon poly.
func Area(poly []pie3d.Point) float64 {
	var s float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		s += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(s) / 2
}

// intersect returns the point of segment a-b where the side function, worth
// sa at a and sb at b, crosses zero.
func intersect(a, b pie3d.Point, sa, sb float64) pie3d.Point {
	t := sa / (sa - sb)
	return pie3d.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
