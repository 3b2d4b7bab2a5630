package pie3d

import (
	"math"
	"testing"
)

func TestBuildGeometry(t *testing.T) {
	l := Layout{RX: 100, RY: 50, CX: 200, CY: 150}
	spans := []Span{{0, math.Pi}, {math.Pi, twoPi}}
	in := []Slice{
		{Value: 1, Color: RGBA{0.8, 0.6, 0.4, 1}, Label: "a"},
		{Value: 1, Explode: 0.5, Color: White, Label: "b",
			Outline: &Outline{Color: Black, Width: 2}},
	}
	geoms := BuildGeometry(l, spans, in, GeometryParams{
		Gap: 0.1, Depth: 0.4, LineColor: White, LineWidth: 1,
	})

	g := geoms[0]
	// Mid angle π/2 pushes the center straight down by gap·ry.
	if math.Abs(g.TopCenter.X-200) > 1e-9 || math.Abs(g.TopCenter.Y-155) > 1e-9 {
		t.Errorf("TopCenter = %v, want (200, 155)", g.TopCenter)
	}
	if want := Pt(g.TopCenter.X+100, g.TopCenter.Y); g.TopStart != want {
		t.Errorf("TopStart = %v, want %v", g.TopStart, want)
	}
	if d := g.BottomCenter.Sub(g.TopCenter); d.X != 0 || math.Abs(d.Y-20) > 1e-12 {
		t.Errorf("bottom offset = %v, want (0, 20)", d)
	}
	if d := g.BottomStop.Sub(g.TopStop); math.Abs(d.Y-20) > 1e-9 || d.X != 0 {
		t.Errorf("bottom stop offset = %v, want (0, 20)", d)
	}
	if want := (RGBA{0.4, 0.3, 0.2, 1}); g.Dark != want {
		t.Errorf("Dark = %+v, want %+v", g.Dark, want)
	}
	if math.Abs(g.DarkGradient.R-0.08) > 1e-12 || g.DarkGradient.A != 1 {
		t.Errorf("DarkGradient = %+v", g.DarkGradient)
	}
	if g.Line != White || g.LineWidth != 1 {
		t.Errorf("default outline = (%v, %v)", g.Line, g.LineWidth)
	}

	g = geoms[1]
	// Mid angle 3π/2 lifts the exploded center by (gap+explode)·ry.
	if math.Abs(g.TopCenter.Y-120) > 1e-9 {
		t.Errorf("exploded TopCenter.Y = %v, want 120", g.TopCenter.Y)
	}
	if g.CanonStart != math.Pi || g.CanonStop != 0 {
		t.Errorf("canonical = (%v, %v), want (π, 0)", g.CanonStart, g.CanonStop)
	}
	if !g.closesCircle() || g.frontStop() != twoPi {
		t.Error("slice ending at 2π should close the circle")
	}
	if g.Line != Black || g.LineWidth != 2 || g.Label != "b" {
		t.Errorf("override = (%v, %v, %q)", g.Line, g.LineWidth, g.Label)
	}
}
