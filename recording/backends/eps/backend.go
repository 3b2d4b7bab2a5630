// Package eps provides the Encapsulated PostScript backend of the recording
// system, built on the gonum.org/v1/plot/vg/vgeps canvas.
//
// One canvas unit is one PostScript point, so a 400x300 chart gets a
// 400x300 pt bounding box. Text is set in Liberation Sans. PostScript level 2
// has no shading operator usable here, so linear gradients are approximated
// by thin bands of solid color clipped to the filled path.
//
//	import _ "github.com/gogpu/pie3d/recording/backends/eps" // registers "eps"
package eps

import (
	"bytes"
	"fmt"
	"io"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/recording"
)

func init() {
	recording.Register("eps", func() recording.Backend {
		return NewBackend()
	})
}

// textFont is the face text commands are set in.
var textFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// header is the first line of a conforming EPS file. vgeps doubles its
// leading percent sign.
var (
	header    = []byte("%!PS-Adobe-3.0 EPSF-3.0")
	badHeader = []byte("%%!PS-Adobe-3.0 EPSF-3.0")
)

// Backend draws recordings on a vgeps canvas.
type Backend struct {
	canvas *vgeps.Canvas
	height float64
	fonts  *font.Cache
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates an EPS backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{fonts: font.NewCache(liberation.Collection())}
}

// Begin creates a page of width x height points.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("eps: invalid page size %dx%d", width, height)
	}
	b.canvas = vgeps.New(vg.Length(width), vg.Length(height))
	b.height = float64(height)
	return nil
}

// End implements recording.Backend. The canvas finishes its output in
// WriteTo.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("eps: End called before Begin")
	}
	return nil
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(path *pie3d.Path, paint pie3d.Paint) {
	if b.canvas == nil || path == nil {
		return
	}
	polys, _ := path.SubPaths()

	switch p := paint.(type) {
	case pie3d.Solid:
		b.fill(polys, p.Color)
	case *pie3d.LinearGradient:
		for _, band := range gradientBands(p, polys) {
			b.fill(band.polys, band.color)
		}
	}
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(path *pie3d.Path, c pie3d.RGBA, width float64) {
	if b.canvas == nil || path == nil || width <= 0 || c.A <= 0 {
		return
	}
	polys, closed := path.SubPaths()

	var vp vg.Path
	for i, poly := range polys {
		b.appendPoly(&vp, poly)
		if closed[i] {
			vp.Close()
		}
	}
	if len(vp) == 0 {
		return
	}
	b.canvas.SetColor(c)
	b.canvas.SetLineWidth(vg.Length(width))
	b.canvas.SetLineDash(nil, 0)
	b.canvas.Stroke(vp)
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y, size float64, c pie3d.RGBA) {
	if b.canvas == nil || s == "" || size <= 0 {
		return
	}
	face := b.fonts.Lookup(textFont, vg.Length(size))
	b.canvas.SetColor(c)
	b.canvas.FillString(face, b.pt(pie3d.Pt(x, y)), s)
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, fmt.Errorf("eps: WriteTo called before Begin")
	}
	var buf bytes.Buffer
	if _, err := b.canvas.WriteTo(&buf); err != nil {
		return 0, err
	}
	return bytes.NewReader(fixHeader(buf.Bytes())).WriteTo(w)
}

// fixHeader restores the "%!PS" magic that readers use to detect the file
// type.
func fixHeader(doc []byte) []byte {
	if bytes.HasPrefix(doc, badHeader) {
		return doc[1:]
	}
	return doc
}

func (b *Backend) fill(polys [][]pie3d.Point, c pie3d.RGBA) {
	var vp vg.Path
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		b.appendPoly(&vp, poly)
		vp.Close()
	}
	if len(vp) == 0 {
		return
	}
	b.canvas.SetColor(c)
	b.canvas.Fill(vp)
}

func (b *Backend) appendPoly(vp *vg.Path, poly []pie3d.Point) {
	for i, p := range poly {
		if i == 0 {
			vp.Move(b.pt(p))
		} else {
			vp.Line(b.pt(p))
		}
	}
}

// pt converts a canvas point to page space, whose origin is the bottom-left
// corner.
func (b *Backend) pt(p pie3d.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(b.height - p.Y)}
}
