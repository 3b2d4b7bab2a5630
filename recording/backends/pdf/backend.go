// Package pdf provides the PDF backend of the recording system, built on
// github.com/go-pdf/fpdf.
//
// The page is sized in points, one point per canvas pixel. Linear gradients
// become axial shadings clipped to the filled path, one shading per pair of
// neighbouring stops. Text is set in the recording's font, embedded as a
// subset.
//
//	import _ "github.com/gogpu/pie3d/recording/backends/pdf" // registers "pdf"
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/internal/clip"
	"github.com/gogpu/pie3d/recording"
	"github.com/gogpu/pie3d/text"
)

// fontFamily is the family the text font is registered under in the document.
const fontFamily = "chart"

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// Backend encodes recordings as single-page PDF documents.
type Backend struct {
	doc      *fpdf.Fpdf
	font     *text.Source
	fontUsed bool
	buf      bytes.Buffer
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FontBackend   = (*Backend)(nil)
)

// NewBackend creates a PDF backend setting text in Go Regular. Begin must
// be called before use.
func NewBackend() *Backend {
	return &Backend{font: text.Default()}
}

// SetFont makes the backend embed and draw text with src.
func (b *Backend) SetFont(src *text.Source) error {
	if len(src.Data()) == 0 {
		return fmt.Errorf("pdf: font %q has no data to embed", src.Name())
	}
	b.font = src
	return nil
}

// Begin starts a document with one page of width x height points.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf: invalid page size %dx%d", width, height)
	}
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineJoinStyle("round")
	doc.SetLineCapStyle("round")
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	b.doc = doc
	b.fontUsed = false
	b.buf.Reset()
	return nil
}

// End closes the document and encodes it.
func (b *Backend) End() error {
	if b.doc == nil {
		return fmt.Errorf("pdf: End called before Begin")
	}
	if err := b.doc.Output(&b.buf); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(path *pie3d.Path, paint pie3d.Paint) {
	if b.doc == nil || path == nil {
		return
	}
	polys, _ := path.SubPaths()

	switch p := paint.(type) {
	case pie3d.Solid:
		b.fill(polys, p.Color)
	case *pie3d.LinearGradient:
		b.fillGradient(polys, p)
	}
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(path *pie3d.Path, c pie3d.RGBA, width float64) {
	if b.doc == nil || path == nil || width <= 0 || c.A <= 0 {
		return
	}
	polys, closed := path.SubPaths()

	n := c.NRGBA()
	b.doc.SetDrawColor(int(n.R), int(n.G), int(n.B))
	b.doc.SetAlpha(float64(n.A)/255, "Normal")
	b.doc.SetLineWidth(width)
	drawn := false
	for i, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		b.polygon(poly)
		if closed[i] {
			b.doc.ClosePath()
		}
		drawn = true
	}
	if drawn {
		b.doc.DrawPath("D")
	}
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y, size float64, c pie3d.RGBA) {
	if b.doc == nil || s == "" || size <= 0 {
		return
	}
	if !b.fontUsed {
		// Registered on first use so pages without text embed no font.
		b.doc.AddUTF8FontFromBytes(fontFamily, "", b.font.Data())
		b.doc.SetFont(fontFamily, "", size)
		b.fontUsed = true
	}
	n := c.NRGBA()
	b.doc.SetFontSize(size)
	b.doc.SetTextColor(int(n.R), int(n.G), int(n.B))
	b.doc.SetAlpha(float64(n.A)/255, "Normal")
	b.doc.Text(x, y, s)
}

// WriteTo writes the document encoded by End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, fmt.Errorf("pdf: WriteTo called before Begin")
	}
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

func (b *Backend) fill(polys [][]pie3d.Point, c pie3d.RGBA) {
	n := c.NRGBA()
	b.doc.SetFillColor(int(n.R), int(n.G), int(n.B))
	b.doc.SetAlpha(float64(n.A)/255, "Normal")
	if b.path(polys) {
		b.doc.DrawPath("F")
	}
}

// fillGradient paints each stop interval as an axial shading, clipped to
// the part of polys between the two stops. The outer intervals extend to
// infinity so the end colors pad the rest of the path.
func (b *Backend) fillGradient(polys [][]pie3d.Point, g *pie3d.LinearGradient) {
	length := g.Start.Distance(g.End)
	if len(g.Stops) < 2 || length == 0 {
		b.fill(polys, g.ColorAt(g.Start.X, g.Start.Y))
		return
	}
	box, ok := bounds(polys)
	if !ok {
		return
	}

	d := g.End.Sub(g.Start)
	offset := func(p pie3d.Point) float64 {
		q := p.Sub(g.Start)
		return (q.X*d.X + q.Y*d.Y) / (length * length)
	}
	at := func(t float64) pie3d.Point {
		return pie3d.Pt(g.Start.X+d.X*t, g.Start.Y+d.Y*t)
	}

	// Shadings ignore the fill alpha.
	b.doc.SetAlpha(1, "Normal")
	last := len(g.Stops) - 1
	for i := 1; i <= last; i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if s1.Offset <= s0.Offset {
			continue
		}
		lo, hi := s0.Offset, s1.Offset
		if i == 1 {
			lo = math.Inf(-1)
		}
		if i == last {
			hi = math.Inf(1)
		}

		var clipped [][]pie3d.Point
		for _, poly := range polys {
			if c := clip.Slab(poly, offset, lo, hi); len(c) >= 3 {
				clipped = append(clipped, c)
			}
		}
		if len(clipped) == 0 {
			continue
		}

		b.doc.RawWriteStr("q")
		b.path(clipped)
		b.doc.RawWriteStr("W n")
		b.shade(box, at(s0.Offset), at(s1.Offset), s0.Color, s1.Color)
		b.doc.RawWriteStr("Q")
	}
}

// shade paints box with an axial shading from c0 at p0 to c1 at p1. The
// shading space is a square so that isolines stay perpendicular to p0-p1.
func (b *Backend) shade(box rect, p0, p1 pie3d.Point, c0, c1 pie3d.RGBA) {
	side := max(box.w, box.h)
	// fpdf places (0, 0) at the lower-left corner of the square.
	rel := func(p pie3d.Point) (float64, float64) {
		return (p.X - box.x) / side, (box.y + side - p.Y) / side
	}
	x1, y1 := rel(p0)
	x2, y2 := rel(p1)
	n0, n1 := c0.NRGBA(), c1.NRGBA()
	b.doc.LinearGradient(box.x, box.y, side, side,
		int(n0.R), int(n0.G), int(n0.B),
		int(n1.R), int(n1.G), int(n1.B),
		x1, y1, x2, y2)
}

// path appends the closed polygons of polys to the current path and reports
// whether any was added.
func (b *Backend) path(polys [][]pie3d.Point) bool {
	added := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		b.polygon(poly)
		b.doc.ClosePath()
		added = true
	}
	return added
}

func (b *Backend) polygon(poly []pie3d.Point) {
	for i, p := range poly {
		if i == 0 {
			b.doc.MoveTo(p.X, p.Y)
		} else {
			b.doc.LineTo(p.X, p.Y)
		}
	}
}

type rect struct {
	x, y, w, h float64
}

// bounds returns the bounding box of polys, or false if it has no area.
func bounds(polys [][]pie3d.Point) (rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if !(maxX > minX) && !(maxY > minY) {
		return rect{}, false
	}
	return rect{minX, minY, maxX - minX, maxY - minY}, true
}
