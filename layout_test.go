package pie3d

import (
	"errors"
	"math"
	"testing"
)

func TestSolveLayout_NoShrink(t *testing.T) {
	l, err := SolveLayout(LayoutParams{
		Width: 400, Height: 400, Margin: 10,
		Ratio: 0.5, Gap: 0.1, Depth: 0.4,
	})
	if err != nil {
		t.Fatalf("SolveLayout() error = %v", err)
	}

	wantRX := 380 / 2.2
	if math.Abs(l.RX-wantRX) > 1e-9 {
		t.Errorf("RX = %v, want %v", l.RX, wantRX)
	}
	if l.RY/l.RX != 0.5 {
		t.Errorf("RY/RX = %v, want exactly 0.5", l.RY/l.RX)
	}
	if l.Scale != 1 {
		t.Errorf("Scale = %v, want 1", l.Scale)
	}
	if l.CX != 200 {
		t.Errorf("CX = %v, want 200", l.CX)
	}
	wantCY := (380-0.4*l.RY)/2 + 10
	if math.Abs(l.CY-wantCY) > 1e-9 {
		t.Errorf("CY = %v, want %v", l.CY, wantCY)
	}
	if want := (Rect{X: 10, Y: 10, W: 380, H: 380}); l.Pie != want {
		t.Errorf("Pie = %+v, want %+v", l.Pie, want)
	}
}

func TestSolveLayout_Shrink(t *testing.T) {
	p := LayoutParams{
		Width: 400, Height: 400, Margin: 10,
		Ratio: 1, Gap: 0.1, Depth: 0.4, MaxExplode: 2,
	}
	l, err := SolveLayout(p)
	if err != nil {
		t.Fatalf("SolveLayout() error = %v", err)
	}

	if l.Scale >= 1 {
		t.Fatalf("Scale = %v, want < 1", l.Scale)
	}
	unscaledRX := 380 / (2 * 3.1)
	if math.Abs(l.RX-unscaledRX*l.Scale) > 1e-9 {
		t.Errorf("RX = %v, want %v", l.RX, unscaledRX*l.Scale)
	}
	if math.Abs(l.RY/l.RX-p.Ratio) > 1e-12 {
		t.Errorf("RY/RX = %v, want %v", l.RY/l.RX, p.Ratio)
	}
	extent := 2*l.RY + p.Depth*l.RY + 2*p.MaxExplode*l.RY
	if math.Abs(extent-l.Pie.H) > 1e-9 {
		t.Errorf("vertical extent = %v, want %v", extent, l.Pie.H)
	}
}

func TestSolveLayout_Reservations(t *testing.T) {
	l, err := SolveLayout(LayoutParams{
		Width: 300, Height: 200, Margin: 5,
		TitleHeight: 20, LegendWidth: 30,
		Ratio: 0.5, Gap: 0,
	})
	if err != nil {
		t.Fatalf("SolveLayout() error = %v", err)
	}
	want := Rect{X: 35, Y: 25, W: 230, H: 170}
	if l.Pie != want {
		t.Errorf("Pie = %+v, want %+v", l.Pie, want)
	}
	if l.CX != 150 {
		t.Errorf("CX = %v, want 150", l.CX)
	}
}

func TestSolveLayout_NoRoom(t *testing.T) {
	tests := []LayoutParams{
		{Width: 20, Height: 100, Margin: 10, Ratio: 0.5},
		{Width: 100, Height: 100, Margin: 10, TitleHeight: 80, Ratio: 0.5},
		{Width: 100, Height: 100, Margin: 10, LegendWidth: 40, Ratio: 0.5},
	}
	for i, p := range tests {
		if _, err := SolveLayout(p); !errors.Is(err, ErrNoRoom) {
			t.Errorf("case %d: error = %v, want ErrNoRoom", i, err)
		}
	}
}
