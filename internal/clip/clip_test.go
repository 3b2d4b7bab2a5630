package clip

import (
	"math"
	"testing"

	"github.com/gogpu/pie3d"
)

var square = []pie3d.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

func TestHalfPlane(t *testing.T) {
	// Keep x <= 1.
	got := HalfPlane(square, func(p pie3d.Point) float64 { return 1 - p.X })
	if len(got) != 4 {
		t.Fatalf("clipped polygon has %d points, want 4: %v", len(got), got)
	}
	for _, p := range got {
		if p.X > 1+1e-12 {
			t.Errorf("point %v lies outside the half-plane", p)
		}
	}
	if a := Area(got); math.Abs(a-4) > 1e-9 {
		t.Errorf("area = %v, want 4", a)
	}

	if got := HalfPlane(square, func(p pie3d.Point) float64 { return -1 - p.X }); len(got) != 0 {
		t.Errorf("fully clipped polygon = %v, want empty", got)
	}
	if got := HalfPlane(square, func(pie3d.Point) float64 { return 1 }); len(got) != 4 {
		t.Errorf("unclipped polygon has %d points, want 4", len(got))
	}
	if got := HalfPlane(nil, func(pie3d.Point) float64 { return 1 }); got != nil {
		t.Errorf("HalfPlane(nil) = %v", got)
	}
}

func TestSlab(t *testing.T) {
	x := func(p pie3d.Point) float64 { return p.X }

	tests := []struct {
		name   string
		lo, hi float64
		want   float64
	}{
		{"inner", 1, 3, 8},
		{"open below", math.Inf(-1), 1, 4},
		{"open above", 3, math.Inf(1), 4},
		{"whole plane", math.Inf(-1), math.Inf(1), 16},
		{"outside", 5, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Area(Slab(square, x, tt.lo, tt.hi)); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
		})
	}
}
