// Package chartfile reads chart descriptions written in TOML:
//
//	[chart]
//	width = 400
//	title = "Fruit"
//	legend = "vertical"
//	background = "#ffffff"
//
//	[[slice]]
//	value = 3
//	color = "#cc3333"
//	label = "Apples"
//
//	[[slice]]
//	value = 2
//	color = "#33cc33"
//	explode = 0.2
//	label = "Pears"
//
// Chart keys left out keep the values of the configuration the file is
// applied to. Unknown keys are rejected.
package chartfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pie3d"
)

// ErrDecode is wrapped by every error caused by the content of a file.
var ErrDecode = errors.New("chartfile: invalid description")

// File is a decoded chart description.
type File struct {
	Chart  Chart   `toml:"chart"`
	Slices []Slice `toml:"slice"`
}

// Chart holds the optional chart-wide settings. Colors are "#RRGGBB".
type Chart struct {
	Width       *float64 `toml:"width"`
	Height      *float64 `toml:"height"`
	Margin      *float64 `toml:"margin"`
	Title       *string  `toml:"title"`
	TitleSize   *float64 `toml:"title_size"`
	TitleColor  *string  `toml:"title_color"`
	Legend      *string  `toml:"legend"`
	LegendSize  *float64 `toml:"legend_size"`
	LegendColor *string  `toml:"legend_color"`
	Depth       *float64 `toml:"depth"`
	Gap         *float64 `toml:"gap"`
	Ratio       *float64 `toml:"ratio"`
	LineWidth   *float64 `toml:"line_width"`
	LineColor   *string  `toml:"line_color"`
	Background  *string  `toml:"background"`
	Rounded     *string  `toml:"rounded"`
	Format      *string  `toml:"format"`
}

// Slice is one [[slice]] table. LineColor and LineWidth, when either is
// set, override the chart outline for this slice.
type Slice struct {
	Value     float64  `toml:"value"`
	Color     string   `toml:"color"`
	Explode   float64  `toml:"explode"`
	Label     string   `toml:"label"`
	LineColor *string  `toml:"line_color"`
	LineWidth *float64 `toml:"line_width"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode decodes a description from r.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrDecode, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%w: %s", ErrDecode, serr.String())
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &file, nil
}

// Apply copies the settings present in the file onto cfg. Validation of the
// resulting ranges is left to cfg.Validate.
func (f *File) Apply(cfg *pie3d.Config) error {
	c := f.Chart
	setFloat(&cfg.Width, c.Width)
	setFloat(&cfg.Height, c.Height)
	setFloat(&cfg.Margin, c.Margin)
	setFloat(&cfg.TitleSize, c.TitleSize)
	setFloat(&cfg.LegendSize, c.LegendSize)
	setFloat(&cfg.Depth, c.Depth)
	setFloat(&cfg.Gap, c.Gap)
	setFloat(&cfg.Ratio, c.Ratio)
	setFloat(&cfg.LineWidth, c.LineWidth)
	if c.Title != nil {
		cfg.Title = *c.Title
	}

	colors := []struct {
		key string
		src *string
		dst *pie3d.RGBA
	}{
		{"title_color", c.TitleColor, &cfg.TitleColor},
		{"legend_color", c.LegendColor, &cfg.LegendColor},
		{"line_color", c.LineColor, &cfg.LineColor},
	}
	for _, col := range colors {
		if col.src == nil {
			continue
		}
		v, err := pie3d.ParseHex(*col.src, 0xff)
		if err != nil {
			return fmt.Errorf("%w: chart.%s: %w", ErrDecode, col.key, err)
		}
		*col.dst = v
	}
	if c.Background != nil {
		bg, err := pie3d.ParseHex(*c.Background, 0xff)
		if err != nil {
			return fmt.Errorf("%w: chart.background: %w", ErrDecode, err)
		}
		cfg.Background = &bg
	}

	if c.Legend != nil {
		m, err := pie3d.ParseLegendMode(*c.Legend)
		if err != nil {
			return fmt.Errorf("%w: chart.legend: %w", ErrDecode, err)
		}
		cfg.Legend = m
	}
	if c.Rounded != nil {
		r, err := pie3d.ParseRoundedRule(*c.Rounded)
		if err != nil {
			return fmt.Errorf("%w: chart.rounded: %w", ErrDecode, err)
		}
		cfg.Rounded = r
	}
	return nil
}

// PieSlices converts the [[slice]] tables. A slice overriding only one of
// line_color and line_width takes the other from cfg.
func (f *File) PieSlices(cfg pie3d.Config) ([]pie3d.Slice, error) {
	out := make([]pie3d.Slice, 0, len(f.Slices))
	for i, s := range f.Slices {
		col, err := pie3d.ParseHex(s.Color, 0xff)
		if err != nil {
			return nil, fmt.Errorf("%w: slice %d color: %w", ErrDecode, i+1, err)
		}
		ps := pie3d.Slice{
			Value:   s.Value,
			Explode: s.Explode,
			Color:   col,
			Label:   s.Label,
		}
		if s.LineColor != nil || s.LineWidth != nil {
			o := &pie3d.Outline{Color: cfg.LineColor, Width: cfg.LineWidth}
			if s.LineColor != nil {
				if o.Color, err = pie3d.ParseHex(*s.LineColor, 0xff); err != nil {
					return nil, fmt.Errorf("%w: slice %d line_color: %w", ErrDecode, i+1, err)
				}
			}
			if s.LineWidth != nil {
				o.Width = *s.LineWidth
			}
			ps.Outline = o
		}
		out = append(out, ps)
	}
	return out, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
