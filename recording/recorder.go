package recording

import (
	"fmt"
	"io"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/text"
)

// Recorder captures draw requests as commands. It implements pie3d.Surface
// and measures text with a text.Source, so the recording carries the exact
// layout the chart was computed with.
//
// Example:
//
//	rec := recording.NewRecorder(400, 300)
//	_ = pie3d.Render(rec, cfg, slices)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	font          *text.Source
	commands      []Command
	resources     *ResourcePool
	flushes       int
}

var _ pie3d.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a canvas of the given size that
// measures text with the default Go Regular font.
func NewRecorder(width, height int) *Recorder {
	return NewRecorderWithFont(width, height, text.Default())
}

// NewRecorderWithFont creates a Recorder that measures text with src.
func NewRecorderWithFont(width, height int, src *text.Source) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		font:      src,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// FillPath implements pie3d.Surface.
func (r *Recorder) FillPath(path *pie3d.Path, paint pie3d.Paint) {
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(path),
		Paint: r.resources.AddPaint(paint),
	})
}

// StrokePath implements pie3d.Surface.
func (r *Recorder) StrokePath(path *pie3d.Path, color pie3d.RGBA, width float64) {
	r.commands = append(r.commands, StrokePathCommand{
		Path:  r.resources.AddPath(path),
		Color: color,
		Width: width,
	})
}

// MeasureText implements pie3d.Surface.
func (r *Recorder) MeasureText(s string, size float64) pie3d.TextExtents {
	ext := r.font.Measure(s, size)
	return pie3d.TextExtents{
		XBearing: ext.XBearing,
		YBearing: ext.YBearing,
		Width:    ext.Width,
		Height:   ext.Height,
	}
}

// DrawText implements pie3d.Surface.
func (r *Recorder) DrawText(s string, x, y, size float64, color pie3d.RGBA) {
	r.commands = append(r.commands, DrawTextCommand{
		Text: s, X: x, Y: y, Size: size, Color: color,
	})
}

// Flush implements pie3d.Surface. It marks the end of one chart; the
// commands stay available until FinishRecording.
func (r *Recorder) Flush() error {
	r.flushes++
	pie3d.Logger().Debug("recording: flush", "commands", len(r.commands))
	return nil
}

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int {
	return r.flushes
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		font:      r.font,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	font          *text.Source
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Font returns the source the text was measured with.
func (r *Recording) Font() *text.Source {
	return r.font
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend, bracketed by Begin
// and End. A FontBackend is first given the recording's font.
func (r *Recording) Playback(backend Backend) error {
	if fb, ok := backend.(FontBackend); ok && r.font != nil {
		if err := fb.SetFont(r.font); err != nil {
			return err
		}
	}
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			backend.FillPath(r.resources.Path(c.Path), r.resources.Paint(c.Paint))
		case StrokePathCommand:
			backend.StrokePath(r.resources.Path(c.Path), c.Color, c.Width)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Size, c.Color)
		}
	}

	return backend.End()
}

// Export replays the recording to a new backend registered under name and
// writes the encoded output to w.
func (r *Recording) Export(name string, w io.Writer) error {
	b, err := NewBackend(name)
	if err != nil {
		return err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}
	if err := r.Playback(wb); err != nil {
		return fmt.Errorf("recording: %s playback: %w", name, err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("recording: %s write: %w", name, err)
	}
	return nil
}
