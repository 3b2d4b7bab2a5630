// Package entry parses the command line form of a slice:
//
//	<value>#RRGGBB:<explode>:<label>
//
// The explode field may be empty ("3#ff0000::Apples") and the label runs to
// the end of the entry.
package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/gogpu/pie3d"
)

// ErrInvalidEntry is wrapped by every *Error.
var ErrInvalidEntry = errors.New("invalid entry")

// Kind classifies what is wrong with an entry.
type Kind int

const (
	BadValue Kind = iota
	BadColor
	BadFormat
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case BadValue:
		return "bad value"
	case BadColor:
		return "bad color"
	case BadFormat:
		return "bad format"
	default:
		return "Unknown"
	}
}

// Error describes a rejected entry.
type Error struct {
	Kind  Kind
	Entry string
	// Line is the 1-based line of the entry for ParseLines, 0 otherwise.
	Line int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid entry: %s: %q", e.Line, e.Kind, e.Entry)
	}
	return fmt.Sprintf("invalid entry: %s: %q", e.Kind, e.Entry)
}

func (e *Error) Unwrap() error {
	return ErrInvalidEntry
}

// entryAST is the token-level shape of an entry. All fields are optional so
// that malformed entries still parse and can be classified.
type entryAST struct {
	Value    string `parser:"@Value?"`
	Hash     bool   `parser:"@\"#\"?"`
	Color    string `parser:"@Hex?"`
	ColorSep bool   `parser:"@\":\"?"`
	Explode  string `parser:"@Number?"`
	LabelSep bool   `parser:"@\":\"?"`
	Label    string `parser:"@Text?"`
}

var parser = participle.MustBuild[entryAST](
	participle.Lexer(entryLexer),
)

// Parse converts one entry to an opaque slice. The outline is left unset so
// that the chart-wide line settings apply.
func Parse(s string) (pie3d.Slice, error) {
	ast, err := parser.ParseString("", s)
	if err != nil {
		return pie3d.Slice{}, fmt.Errorf("%w: %w", &Error{Kind: BadFormat, Entry: s}, err)
	}

	fail := func(k Kind) (pie3d.Slice, error) {
		return pie3d.Slice{}, &Error{Kind: k, Entry: s}
	}

	value, ok := parseNumber(ast.Value)
	if !ok || !ast.Hash {
		return fail(BadValue)
	}
	if len(ast.Color) < 6 {
		return fail(BadColor)
	}
	color, err := pie3d.ParseHex(ast.Color[:6], 0xff)
	if err != nil {
		return fail(BadColor)
	}
	if len(ast.Color) != 6 || !ast.ColorSep {
		return fail(BadFormat)
	}

	var explode float64
	if ast.Explode != "" {
		if explode, ok = parseNumber(ast.Explode); !ok {
			return fail(BadValue)
		}
	}
	if !ast.LabelSep {
		return fail(BadValue)
	}

	return pie3d.Slice{
		Value:   value,
		Explode: explode,
		Color:   color,
		Label:   ast.Label,
	}, nil
}

// ParseLines parses one entry per line of r. Blank lines and lines starting
// with '#' after optional spaces are skipped, which leaves no valid entry
// out since every entry starts with its value.
func ParseLines(r io.Reader) ([]pie3d.Slice, error) {
	var slices []pie3d.Slice
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || trimmed[0] == '#' {
			continue
		}
		s, err := Parse(text)
		if err != nil {
			var ee *Error
			if errors.As(err, &ee) {
				ee.Line = line
			}
			return nil, err
		}
		slices = append(slices, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("entry: read: %w", err)
	}
	return slices, nil
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
