// Package raster provides the PNG backend of the recording system.
//
// Paths are scan-converted with the golang.org/x/image/vector rasterizer,
// which produces anti-aliased coverage; gradients are sampled per pixel and
// text is painted with the text package.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/pie3d/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	_ = rec.Playback(backend)
//	_, _ = backend.(recording.WriterBackend).WriteTo(w)
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/recording"
	"github.com/gogpu/pie3d/text"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an RGBA image.
type Backend struct {
	img    *image.RGBA
	width  int
	height int
	font   *text.Source
	z      *vector.Rasterizer
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
	_ recording.FontBackend   = (*Backend)(nil)
)

// NewBackend creates a raster backend drawing text in Go Regular.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{font: text.Default()}
}

// SetFont makes the backend draw text with src.
func (b *Backend) SetFont(src *text.Source) error {
	b.font = src
	return nil
}

// Begin allocates a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(path *pie3d.Path, paint pie3d.Paint) {
	if b.img == nil || path == nil || paint == nil {
		return
	}
	b.z.Reset(b.width, b.height)
	polys, _ := path.SubPaths()
	drawn := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		addPolygon(b.z, poly)
		drawn = true
	}
	if drawn {
		b.z.Draw(b.img, b.img.Bounds(), paintSource(paint), image.Point{})
	}
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(path *pie3d.Path, c pie3d.RGBA, width float64) {
	if b.img == nil || path == nil || width <= 0 || c.A <= 0 {
		return
	}
	b.z.Reset(b.width, b.height)
	polys, closed := path.SubPaths()
	drawn := false
	for i, poly := range polys {
		if outlineStroke(b.z, poly, closed[i], width/2) {
			drawn = true
		}
	}
	if drawn {
		b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{})
	}
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y, size float64, c pie3d.RGBA) {
	if b.img == nil {
		return
	}
	b.font.Draw(b.img, s, x, y, size, c)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.Image())
	return cw.n, err
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return b.img
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

func addPolygon(z *vector.Rasterizer, poly []pie3d.Point) {
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// paintSource returns the image the rasterizer composites through its
// coverage mask.
func paintSource(paint pie3d.Paint) image.Image {
	switch p := paint.(type) {
	case pie3d.Solid:
		return image.NewUniform(p.Color)
	case *pie3d.LinearGradient:
		return &gradientImage{g: p}
	default:
		return image.Transparent
	}
}

// gradientImage is an unbounded image sampling a gradient at pixel centers.
type gradientImage struct {
	g *pie3d.LinearGradient
}

func (gi *gradientImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (gi *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (gi *gradientImage) At(x, y int) color.Color {
	return gi.g.ColorAt(float64(x)+0.5, float64(y)+0.5)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
