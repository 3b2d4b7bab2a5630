package recording

import "github.com/gogpu/pie3d"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPath   CommandType = iota // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdDrawText                      // Draw text
)

var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded draw request.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// PaintRef is a reference to a paint in the resource pool.
type PaintRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid paint.
func (r PaintRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillPathCommand fills a path with a paint. Every sub-path is implicitly
// closed and the non-zero winding rule applies.
type FillPathCommand struct {
	Path  PathRef
	Paint PaintRef
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path with a solid color. Widths of zero or
// less draw nothing.
type StrokePathCommand struct {
	Path  PathRef
	Color pie3d.RGBA
	Width float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws a string with its baseline origin at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Size  float64
	Color pie3d.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
