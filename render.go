package pie3d

import (
	"errors"
	"fmt"
	"math"
)

// Legend row proportions: the swatch spans 15% to 85% of the row height and
// the label starts 1.3 rows from the left edge.
const (
	swatchInset  = 0.15
	labelIndent  = 1.3
	swatchStroke = 1.0
)

// TextMeasurer measures strings; every Surface is one.
type TextMeasurer interface {
	MeasureText(s string, size float64) TextExtents
}

// Plan is the derived state of one render: layout, per-slice geometry,
// wall order and text metrics. A Plan is immutable once built.
type Plan struct {
	Config Config
	Layout Layout
	Slices []Geometry
	Order  Order

	// Title holds the measured title extents (zero without a title).
	Title TextExtents

	legend legendMetrics
}

type legendMetrics struct {
	rowHeight float64
	width     float64
	height    float64
	labels    []TextExtents
}

// NewPlan validates the input and runs the geometric phases of a render:
// normalization, layout, geometry and occlusion order. Text is measured with m.
//
// It returns ErrZeroTotal for an empty or all-zero slice list.
func NewPlan(cfg Config, slices []Slice, m TextMeasurer) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	values := make([]float64, len(slices))
	maxExplode := 0.0
	for i, s := range slices {
		if s.Explode < 0 || !finite(s.Explode) {
			return nil, fmt.Errorf("%w: slice %d has explode %v", ErrNegativeValue, i, s.Explode)
		}
		values[i] = s.Value
		maxExplode = math.Max(maxExplode, s.Explode)
	}

	spans, err := Normalize(values)
	if err != nil {
		return nil, err
	}

	p := &Plan{Config: cfg}
	if cfg.Title != "" {
		p.Title = m.MeasureText(cfg.Title, cfg.TitleSize)
	}
	p.legend = measureLegend(cfg, slices, m)

	p.Layout, err = SolveLayout(LayoutParams{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Margin:       cfg.Margin,
		TitleHeight:  p.Title.Height,
		LegendWidth:  p.legend.width,
		LegendHeight: p.legend.height,
		Ratio:        cfg.Ratio,
		Gap:          cfg.Gap,
		MaxExplode:   maxExplode,
		Depth:        cfg.Depth,
	})
	if err != nil {
		return nil, err
	}

	p.Slices = BuildGeometry(p.Layout, spans, slices, GeometryParams{
		Gap:       cfg.Gap,
		Depth:     cfg.Depth,
		LineColor: cfg.LineColor,
		LineWidth: cfg.LineWidth,
	})
	if cfg.Depth > 0 {
		p.Order = ResolveOrder(p.Slices, cfg.Rounded)
	}

	Logger().Debug("pie3d: plan",
		"slices", len(p.Slices),
		"rx", p.Layout.RX, "ry", p.Layout.RY,
		"cx", p.Layout.CX, "cy", p.Layout.CY,
		"scale", p.Layout.Scale,
		"start_walls", len(p.Order.Start),
		"stop_walls", len(p.Order.Stop),
		"rounded_walls", len(p.Order.Rounded))

	return p, nil
}

func measureLegend(cfg Config, slices []Slice, m TextMeasurer) legendMetrics {
	var lm legendMetrics
	if cfg.Legend == LegendNone {
		return lm
	}

	lm.labels = make([]TextExtents, len(slices))
	maxWidth := 0.0
	for i, s := range slices {
		ext := m.MeasureText(s.Label, cfg.LegendSize)
		lm.labels[i] = ext
		lm.rowHeight = math.Max(lm.rowHeight, ext.Height)
		maxWidth = math.Max(maxWidth, ext.Width)
	}

	switch cfg.Legend {
	case LegendVertical:
		lm.height = lm.rowHeight * float64(len(slices))
	case LegendHorizontal:
		lm.width = maxWidth + labelIndent*lm.rowHeight
	}
	return lm
}

// Render draws a chart onto s and flushes it.
//
// Zero slices render nothing and return nil. A zero total returns
// ErrZeroTotal, and configurations leaving no room for the pie return
// ErrNoRoom; in both cases no request reaches the surface.
func Render(s Surface, cfg Config, slices []Slice) error {
	if len(slices) == 0 {
		if err := cfg.Validate(); err != nil {
			return err
		}
		Logger().Warn("pie3d: no slices, nothing rendered")
		return nil
	}

	p, err := NewPlan(cfg, slices, s)
	if err != nil {
		if errors.Is(err, ErrZeroTotal) {
			Logger().Warn("pie3d: zero total, nothing rendered")
		}
		return err
	}

	p.Draw(s)
	return s.Flush()
}

// Draw issues the draw requests of the plan in painting order: background,
// title, legend, side walls (start, stop, rounded), then every top face in
// input order.
func (p *Plan) Draw(s Surface) {
	p.drawBackground(s)
	p.drawTitle(s)
	p.drawLegend(s)

	if p.Config.Depth > 0 {
		for _, i := range p.Order.Start {
			p.drawFlatWall(s, &p.Slices[i], true)
		}
		for _, i := range p.Order.Stop {
			p.drawFlatWall(s, &p.Slices[i], false)
		}
		for _, i := range p.Order.Rounded {
			p.drawRoundedWall(s, &p.Slices[i])
		}
	}

	for i := range p.Slices {
		p.drawTop(s, &p.Slices[i])
	}
}

func (p *Plan) drawBackground(s Surface) {
	if p.Config.Background == nil {
		return
	}
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(p.Config.Width, 0)
	path.LineTo(p.Config.Width, p.Config.Height)
	path.LineTo(0, p.Config.Height)
	path.Close()
	s.FillPath(path, Solid{Color: *p.Config.Background})
}

func (p *Plan) drawTitle(s Surface) {
	if p.Config.Title == "" {
		return
	}
	x := p.Config.Width/2 - p.Title.Width/2
	y := p.Config.Margin - p.Title.YBearing
	s.DrawText(p.Config.Title, x, y, p.Config.TitleSize, p.Config.TitleColor)
}

func (p *Plan) drawLegend(s Surface) {
	row := p.legend.rowHeight
	var x, y float64
	switch p.Config.Legend {
	case LegendVertical:
		x = p.Config.Margin
		y = p.Layout.Pie.Y + p.Layout.Pie.H
	case LegendHorizontal:
		x = p.Config.Margin
		y = p.Layout.Pie.Y + (p.Layout.Pie.H-row*float64(len(p.Slices)))/2
	default:
		return
	}

	for i := range p.Slices {
		g := &p.Slices[i]

		swatch := NewPath()
		x0, y0 := x+row*swatchInset, y+row*swatchInset
		x1, y1 := x+row*(1-swatchInset), y+row*(1-swatchInset)
		swatch.MoveTo(x0, y0)
		swatch.LineTo(x1, y0)
		swatch.LineTo(x1, y1)
		swatch.LineTo(x0, y1)
		swatch.Close()
		s.FillPath(swatch, Solid{Color: g.Light})
		s.StrokePath(swatch, Black, swatchStroke)

		s.DrawText(g.Label, x+row*labelIndent, y-p.legend.labels[i].YBearing,
			p.Config.LegendSize, p.Config.LegendColor)
		y += row
	}
}

// drawFlatWall paints the start (or stop) wall: the quad between the slice
// center line and its leading (or trailing) edge.
func (p *Plan) drawFlatWall(s Surface, g *Geometry, start bool) {
	top, bottom := g.TopStop, g.BottomStop
	if start {
		top, bottom = g.TopStart, g.BottomStart
	}

	path := NewPath()
	path.MoveTo(g.TopCenter.X, g.TopCenter.Y)
	path.LineTo(top.X, top.Y)
	path.LineTo(bottom.X, bottom.Y)
	path.LineTo(g.BottomCenter.X, g.BottomCenter.Y)
	path.LineTo(g.TopCenter.X, g.TopCenter.Y)
	path.Close()

	s.FillPath(path, Solid{Color: g.Dark})
	s.StrokePath(path, g.Line, g.LineWidth)
}

// drawRoundedWall paints the curved front wall between the top arc and the
// bottom arc, clamped to the front half of the drum.
func (p *Plan) drawRoundedWall(s Surface, g *Geometry) {
	l := &p.Layout
	start, stop, clamped := roundedSpan(g)

	topStart := g.TopStart
	if start != g.Start {
		topStart = EllipsePoint(g.TopCenter, l.RX, l.RY, start)
	}
	bottomStop := g.BottomStop
	if clamped {
		bottomStop = EllipsePoint(g.BottomCenter, l.RX, l.RY, stop)
	}

	path := NewPath()
	path.MoveTo(topStart.X, topStart.Y)
	ArcTo(path, g.TopCenter, l.RX, l.RY, start, stop)
	path.LineTo(bottomStop.X, bottomStop.Y)
	ArcNegativeTo(path, g.BottomCenter, l.RX, l.RY, stop, start)
	path.LineTo(topStart.X, topStart.Y)

	x0 := p.Config.Margin
	x1 := p.Config.Margin + l.Pie.W
	paint := NewLinearGradient(x0, 0, x1, 0).
		AddColorStop(0, g.DarkGradient.Opaque()).
		AddColorStop(1, g.Light.Opaque())

	s.FillPath(path, paint)
	s.StrokePath(path, g.Line, g.LineWidth)
}

func (p *Plan) drawTop(s Surface, g *Geometry) {
	l := &p.Layout

	path := NewPath()
	path.MoveTo(g.TopCenter.X, g.TopCenter.Y)
	ArcTo(path, g.TopCenter, l.RX, l.RY, g.Start, g.Stop)
	path.LineTo(g.TopCenter.X, g.TopCenter.Y)
	path.Close()

	s.FillPath(path, Solid{Color: g.Light})
	s.StrokePath(path, g.Line, g.LineWidth)
}
