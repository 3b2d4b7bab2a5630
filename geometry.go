package pie3d

// Color factors of the derived slice colors.
const (
	darkFactor         = 0.5
	darkGradientFactor = 0.1
)

// Geometry is the derived, immutable shape of one slice.
type Geometry struct {
	// Index is the position of the slice in the input.
	Index int

	// Start and Stop are the raw, unwrapped angles.
	Start, Stop float64

	// CanonStart and CanonStop are Start and Stop reduced into [0, 2π).
	CanonStart, CanonStop float64

	TopCenter, TopStart, TopStop          Point
	BottomCenter, BottomStart, BottomStop Point

	// Light fills the top face, Dark the flat walls, and DarkGradient is the
	// far stop of the rounded wall gradient.
	Light, Dark, DarkGradient RGBA

	Line      RGBA
	LineWidth float64

	Label string
}

// closesCircle reports whether the stop angle lands on a whole turn while
// the slice has a positive span, i.e. its canonical stop 0 stands for 2π.
func (g *Geometry) closesCircle() bool {
	return g.CanonStop == 0 && g.Stop > g.Start
}

// frontStop is the canonical stop with a closing stop counted as 2π.
func (g *Geometry) frontStop() float64 {
	if g.closesCircle() {
		return twoPi
	}
	return g.CanonStop
}

// GeometryParams carries the chart settings the geometry depends on.
type GeometryParams struct {
	Gap       float64
	Depth     float64
	LineColor RGBA
	LineWidth float64
}

// BuildGeometry derives the top and bottom corner points and colors of every
// slice. spans and slices must have the same length.
func BuildGeometry(l Layout, spans []Span, slices []Slice, p GeometryParams) []Geometry {
	center := Pt(l.CX, l.CY)
	drop := Pt(0, p.Depth*l.RY)

	geoms := make([]Geometry, len(spans))
	for i, span := range spans {
		s := slices[i]
		g := &geoms[i]

		g.Index = i
		g.Start = span.Start
		g.Stop = span.Stop
		g.CanonStart = Canonical(span.Start)
		g.CanonStop = Canonical(span.Stop)

		offset := p.Gap + s.Explode
		g.TopCenter = EllipsePoint(center, offset*l.RX, offset*l.RY, span.Mid())
		g.TopStart = EllipsePoint(g.TopCenter, l.RX, l.RY, span.Start)
		g.TopStop = EllipsePoint(g.TopCenter, l.RX, l.RY, span.Stop)

		g.BottomCenter = g.TopCenter.Add(drop)
		g.BottomStart = g.TopStart.Add(drop)
		g.BottomStop = g.TopStop.Add(drop)

		g.Light = s.Color
		g.Dark = s.Color.Scale(darkFactor)
		g.DarkGradient = s.Color.Scale(darkGradientFactor)

		g.Line = p.LineColor
		g.LineWidth = p.LineWidth
		if s.Outline != nil {
			g.Line = s.Outline.Color
			g.LineWidth = s.Outline.Width
		}
		g.Label = s.Label
	}
	return geoms
}
