package pie3d

import "testing"

func TestPathSubPaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	p.LineTo(0, 10)
	p.MoveTo(5, 5)
	p.LineTo(6, 6)

	polys, closed := p.SubPaths()
	if len(polys) != 3 {
		t.Fatalf("got %d sub-paths, want 3", len(polys))
	}
	if len(polys[0]) != 3 || !closed[0] {
		t.Errorf("sub-path 0 = %v closed=%v", polys[0], closed[0])
	}
	// A LineTo after Close restarts from the closed sub-path's start.
	if polys[1][0] != Pt(0, 0) || polys[1][1] != Pt(0, 10) || closed[1] {
		t.Errorf("sub-path 1 = %v closed=%v", polys[1], closed[1])
	}
	if closed[2] {
		t.Error("sub-path 2 should be open")
	}
}

func TestPathLineToEmpty(t *testing.T) {
	p := NewPath()
	p.Close()
	p.LineTo(3, 4)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", p.Elements()[0])
	}
	if p.CurrentPoint() != Pt(3, 4) {
		t.Errorf("CurrentPoint() = %v", p.CurrentPoint())
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	c := p.Clone()
	p.LineTo(2, 2)
	if c.Len() != 1 {
		t.Errorf("clone Len() = %d, want 1", c.Len())
	}
}
