package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pie3d"
)

// joinSegments is the number of edges of the polygon approximating a round
// join or cap.
const joinSegments = 16

// outlineStroke adds the outline of a stroked polyline to z as a union of
// one quad per segment and one disc per vertex. The rasterizer accumulates
// signed coverage, so every piece is emitted with the same orientation and
// overlaps saturate instead of cancelling.
// It reports whether anything was added.
func outlineStroke(z *vector.Rasterizer, poly []pie3d.Point, closed bool, hw float64) bool {
	if len(poly) == 0 {
		return false
	}
	if closed && poly[len(poly)-1] != poly[0] {
		poly = append(poly[:len(poly):len(poly)], poly[0])
	}

	added := false
	for i := 1; i < len(poly); i++ {
		if segmentQuad(z, poly[i-1], poly[i], hw) {
			added = true
		}
	}
	for _, p := range poly {
		disc(z, p, hw)
		added = true
	}
	return added
}

// segmentQuad adds the rectangle of half-width hw around the segment a-b.
func segmentQuad(z *vector.Rasterizer, a, b pie3d.Point, hw float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := a.Distance(b)
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	addPolygon(z, []pie3d.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	})
	return true
}

// disc adds a round join of radius r at c, traced with decreasing angles to
// match the orientation of segmentQuad.
func disc(z *vector.Rasterizer, c pie3d.Point, r float64) {
	pts := make([]pie3d.Point, joinSegments)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / joinSegments
		pts[i] = pie3d.EllipsePoint(c, r, r, a)
	}
	addPolygon(z, pts)
}
