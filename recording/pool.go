package recording

import (
	"slices"

	"github.com/gogpu/pie3d"
)

// ResourcePool stores the paths and paints referenced by recorded commands.
// Each Add clones mutable resources so that later changes by the caller do
// not leak into the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*pie3d.Path
	paints []pie3d.Paint
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*pie3d.Path, 0, 64),
		paints: make([]pie3d.Paint, 0, 64),
	}
}

// AddPath clones path into the pool and returns its reference.
func (p *ResourcePool) AddPath(path *pie3d.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// Path returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) Path(ref PathRef) *pie3d.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint stores paint and returns its reference. Gradients are copied.
func (p *ResourcePool) AddPaint(paint pie3d.Paint) PaintRef {
	if g, ok := paint.(*pie3d.LinearGradient); ok && g != nil {
		c := *g
		c.Stops = slices.Clone(g.Stops)
		paint = &c
	}
	p.paints = append(p.paints, paint)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// Paint returns the paint for ref, or nil if ref is out of range.
func (p *ResourcePool) Paint(ref PaintRef) pie3d.Paint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}
