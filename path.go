package pie3d

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-path at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current sub-path by drawing a line to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a polyline path made of one or more sub-paths.
// Fills treat every sub-path as implicitly closed; strokes only close
// sub-paths that end with an explicit Close.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current sub-path
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y). On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current sub-path by drawing a line to the start point.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elems := make([]PathElement, len(p.elements))
	copy(elems, p.elements)
	return &Path{elements: elems, start: p.start, current: p.current}
}

// SubPaths splits the path into point lists, one per sub-path. The second
// result reports whether each sub-path ended with an explicit Close.
func (p *Path) SubPaths() ([][]Point, []bool) {
	var (
		polys  [][]Point
		closed []bool
		cur    []Point
		start  Point
	)
	flush := func(c bool) {
		if len(cur) > 0 {
			polys = append(polys, cur)
			closed = append(closed, c)
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = e.Point
			cur = append(cur, e.Point)
		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, start)
			}
			cur = append(cur, e.Point)
		case Close:
			flush(true)
		}
	}
	flush(false)
	return polys, closed
}
