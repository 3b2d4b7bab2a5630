// Package svg provides the SVG backend of the recording system, built on
// github.com/ajstarks/svgo.
//
// Paths become <path> elements with coordinates rounded to a thousandth of
// a pixel, gradients become userSpaceOnUse <linearGradient> definitions
// and text becomes <text> elements positioned by a translate transform.
//
//	import _ "github.com/gogpu/pie3d/recording/backends/svg" // registers "svg"
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/recording"
	"github.com/gogpu/pie3d/text"
)

// FontFamily is the CSS font-family of text elements. It names the font the
// recorder measures with first.
const FontFamily = "Go, sans-serif"

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend encodes recordings as SVG documents.
type Backend struct {
	buf       bytes.Buffer
	canvas    *svgo.SVG
	gradients int
	family    string
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FontBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{family: FontFamily}
}

// SetFont names the family of src in text elements. A source without a
// family name keeps the default.
func (b *Backend) SetFont(src *text.Source) error {
	name := strings.NewReplacer("'", "", `"`, "", ";", "").Replace(src.Name())
	if name == "" {
		b.family = FontFamily
		return nil
	}
	b.family = "'" + name + "', sans-serif"
	return nil
}

// Begin starts a document of the given size.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.gradients = 0
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("svg: End called before Begin")
	}
	b.canvas.End()
	return nil
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(path *pie3d.Path, paint pie3d.Paint) {
	if b.canvas == nil || path == nil || path.Len() == 0 {
		return
	}

	var style string
	switch p := paint.(type) {
	case pie3d.Solid:
		style = "fill:" + p.Color.Hex() + opacity("fill-opacity", p.Color.A)
	case *pie3d.LinearGradient:
		style = "fill:url(#" + b.defineGradient(p) + ")"
	default:
		return
	}
	b.canvas.Path(pathData(path, true), style+";stroke:none")
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(path *pie3d.Path, c pie3d.RGBA, width float64) {
	if b.canvas == nil || path == nil || path.Len() == 0 || width <= 0 || c.A <= 0 {
		return
	}
	style := "fill:none;stroke:" + c.Hex() + opacity("stroke-opacity", c.A) +
		";stroke-width:" + num(width) + ";stroke-linejoin:round;stroke-linecap:round"
	b.canvas.Path(pathData(path, false), style)
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y, size float64, c pie3d.RGBA) {
	if b.canvas == nil || s == "" {
		return
	}
	b.canvas.Gtransform("translate(" + num(x) + "," + num(y) + ")")
	b.canvas.Text(0, 0, s,
		"font-family:"+b.family+";font-size:"+num(size)+"px;fill:"+c.Hex()+opacity("fill-opacity", c.A))
	b.canvas.Gend()
}

// WriteTo writes the encoded document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// defineGradient writes a <linearGradient> definition and returns its id.
// svgo's LinearGradient only takes bounding-box percentages, so the element
// is written directly to keep canvas coordinates.
func (b *Backend) defineGradient(g *pie3d.LinearGradient) string {
	b.gradients++
	id := "gradient" + strconv.Itoa(b.gradients)

	b.canvas.Def()
	fmt.Fprintf(b.canvas.Writer,
		`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, num(g.Start.X), num(g.Start.Y), num(g.End.X), num(g.End.Y))
	for _, s := range g.Stops {
		fmt.Fprintf(b.canvas.Writer, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(s.Offset), s.Color.Hex(), num(s.Color.A))
	}
	fmt.Fprintln(b.canvas.Writer, `</linearGradient>`)
	b.canvas.DefEnd()
	return id
}

// pathData formats path as SVG path data. Fills close every sub-path;
// strokes close only the explicitly closed ones.
func pathData(path *pie3d.Path, fill bool) string {
	polys, closed := path.SubPaths()
	var sb strings.Builder
	for i, poly := range polys {
		for j, p := range poly {
			if j == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString(" L")
			}
			sb.WriteString(num(p.X))
			sb.WriteByte(' ')
			sb.WriteString(num(p.Y))
		}
		if fill || closed[i] {
			sb.WriteString(" Z")
		}
		if i < len(polys)-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func opacity(prop string, a float64) string {
	if a >= 1 {
		return ""
	}
	return ";" + prop + ":" + num(a)
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
