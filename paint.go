package pie3d

// Paint describes how a filled path is colored.
// This is a sealed interface; Solid and *LinearGradient implement it.
type Paint interface {
	// ColorAt returns the color at the given canvas position.
	ColorAt(x, y float64) RGBA

	paintMarker()
}

// Solid is a flat color paint.
type Solid struct {
	Color RGBA
}

func (Solid) paintMarker() {}

// ColorAt implements Paint.
func (s Solid) ColorAt(_, _ float64) RGBA {
	return s.Color
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradient is a linear color transition between two canvas points.
// Outside [Start, End] the edge colors extend (pad mode).
//
// Example:
//
//	g := pie3d.NewLinearGradient(10, 0, 390, 0).
//	    AddColorStop(0, dark).
//	    AddColorStop(1, light)
type LinearGradient struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops in ascending offset order
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset.
// Stops must be added in ascending offset order.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (*LinearGradient) paintMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.Stops[0].Color
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := clamp01(((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq)

	return g.colorAtOffset(t)
}

func (g *LinearGradient) colorAtOffset(t float64) RGBA {
	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if t <= next.Offset {
			span := next.Offset - prev.Offset
			if span <= 0 {
				return next.Color
			}
			return prev.Color.Lerp(next.Color, (t-prev.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}
