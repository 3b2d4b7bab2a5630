package pie3d

// TextExtents describes the measured size of a string, in the same units as
// the canvas. YBearing is the offset from the baseline to the top of the ink
// and is negative for text that rises above the baseline.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
}

// Surface is the drawing target of a render.
//
// Requests must be applied in the order they are issued: the chart relies on
// the painter's algorithm, so a Surface must not reorder or batch fills and
// strokes in a way that changes which one ends up on top.
type Surface interface {
	// FillPath fills every sub-path of p (implicitly closed) with paint,
	// using the non-zero winding rule.
	FillPath(p *Path, paint Paint)

	// StrokePath strokes p with a solid color. Widths <= 0 draw nothing.
	StrokePath(p *Path, c RGBA, width float64)

	// MeasureText returns the extents of s at the given font size.
	MeasureText(s string, size float64) TextExtents

	// DrawText paints s with its baseline origin at (x, y).
	DrawText(s string, x, y, size float64, c RGBA)

	// Flush signals that all requests of the render have been issued.
	Flush() error
}
