package recording

import (
	"image"
	"io"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/text"
)

// Backend is the interface that all output backends must implement.
// Backends receive the recorded draw requests and translate them to their
// output format (raster pixels, SVG elements, PDF content streams).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// Coordinates are canvas pixels with the origin at the top-left corner and
// y growing downwards; backends with another convention flip themselves.
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	// It must be called before any drawing operation.
	Begin(width, height int) error

	// End finalizes the output. After End, WriteTo can be used.
	End() error

	// FillPath fills path with paint using the non-zero rule. Every
	// sub-path is implicitly closed.
	FillPath(path *pie3d.Path, paint pie3d.Paint)

	// StrokePath strokes path with round joins. Widths of zero or less
	// draw nothing.
	StrokePath(path *pie3d.Path, color pie3d.RGBA, width float64)

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y, size float64, color pie3d.RGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the encoded output. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() image.Image
}

// FontBackend is a Backend that can draw text in the font the recording was
// measured with. Playback calls SetFont before Begin.
type FontBackend interface {
	Backend

	SetFont(src *text.Source) error
}
