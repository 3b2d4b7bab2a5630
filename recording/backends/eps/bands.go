package eps

import (
	"math"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/internal/clip"
)

const (
	// bandWidth is the target width of one gradient band in points.
	bandWidth = 2.0
	maxBands  = 256

	// bandOverlap extends every band into its successor so that viewers
	// anti-aliasing each fill do not show seams.
	bandOverlap = 0.25
)

type band struct {
	color pie3d.RGBA
	polys [][]pie3d.Point
}

// gradientBands splits polys into strips perpendicular to the gradient axis
// and pairs each strip with the gradient color at its middle. The first and
// last strips extend to infinity to cover the padded ends.
func gradientBands(g *pie3d.LinearGradient, polys [][]pie3d.Point) []band {
	d := g.End.Sub(g.Start)
	length := g.Start.Distance(g.End)
	if length == 0 || len(g.Stops) == 0 {
		return []band{{color: g.ColorAt(g.Start.X, g.Start.Y), polys: polys}}
	}

	n := int(math.Ceil(length / bandWidth))
	n = max(1, min(n, maxBands))
	step := length / float64(n)

	// offset is the distance of p along the gradient axis from Start.
	offset := func(p pie3d.Point) float64 {
		q := p.Sub(g.Start)
		return (q.X*d.X + q.Y*d.Y) / length
	}

	bands := make([]band, 0, n)
	for k := range n {
		lo, hi := float64(k)*step, float64(k+1)*step+bandOverlap
		if k == 0 {
			lo = math.Inf(-1)
		}
		if k == n-1 {
			hi = math.Inf(1)
		}

		var clipped [][]pie3d.Point
		for _, poly := range polys {
			if c := clip.Slab(poly, offset, lo, hi); len(c) >= 3 {
				clipped = append(clipped, c)
			}
		}
		if len(clipped) == 0 {
			continue
		}

		t := (float64(k) + 0.5) / float64(n)
		mid := pie3d.Pt(g.Start.X+d.X*t, g.Start.Y+d.Y*t)
		bands = append(bands, band{color: g.ColorAt(mid.X, mid.Y), polys: clipped})
	}
	return bands
}
