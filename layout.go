package pie3d

import "fmt"

// LayoutParams are the inputs of the layout solver. Text extents are
// measured by the caller; the solver itself is pure arithmetic.
type LayoutParams struct {
	Width, Height float64
	Margin        float64

	// TitleHeight is reserved above the pie.
	TitleHeight float64

	// LegendWidth is reserved on both sides of the pie (horizontal legends);
	// LegendHeight is reserved under it (vertical legends).
	LegendWidth  float64
	LegendHeight float64

	Ratio      float64
	Gap        float64
	MaxExplode float64
	Depth      float64
}

// Layout is the solved placement of the pie on the canvas.
type Layout struct {
	// RX and RY are the horizontal and vertical radii of the top ellipse.
	RX, RY float64

	// CX and CY locate the undisplaced pie center.
	CX, CY float64

	// Pie is the area left for the pie once margins, title and legend are
	// reserved.
	Pie Rect

	// Scale is the uniform factor applied to both radii to fit the pie
	// vertically, or 1 when no shrink was needed.
	Scale float64
}

// SolveLayout fits the pie radii and center into the canvas.
//
// The horizontal radius is sized so that radius, gap and the largest explode
// fit on both sides of the pie width. If the resulting vertical extent
// (both radii, the extrusion and the explode above and below) exceeds the
// pie height, both radii shrink by the same factor.
func SolveLayout(p LayoutParams) (Layout, error) {
	pieW := p.Width - (2*p.Margin + 2*p.LegendWidth)
	pieH := p.Height - (2*p.Margin + p.TitleHeight + p.LegendHeight)
	if pieW <= 0 || pieH <= 0 {
		return Layout{}, fmt.Errorf("%w: pie area %.2fx%.2f", ErrNoRoom, pieW, pieH)
	}

	rx := pieW / (2 * (p.MaxExplode + p.Gap + 1))
	ry := rx * p.Ratio

	scale := 1.0
	extent := 2*ry + p.Depth*ry + 2*p.MaxExplode*ry
	if extent > pieH {
		scale = pieH / extent
		rx *= scale
		ry *= scale
	}

	return Layout{
		RX: rx,
		RY: ry,
		CX: pieW/2 + p.Margin + p.LegendWidth,
		CY: (pieH-p.Depth*ry)/2 + p.Margin + p.TitleHeight,
		Pie: Rect{
			X: p.Margin + p.LegendWidth,
			Y: p.Margin + p.TitleHeight,
			W: pieW,
			H: pieH,
		},
		Scale: scale,
	}, nil
}
