package pie3d

import (
	"fmt"
	"math"
)

// LegendMode selects how slice labels are laid out.
type LegendMode int

const (
	// LegendNone draws no legend.
	LegendNone LegendMode = iota
	// LegendVertical lists one row per slice under the pie.
	LegendVertical
	// LegendHorizontal reserves a measured column on the left of the pie.
	LegendHorizontal
)

var legendModeNames = [...]string{
	LegendNone:       "none",
	LegendVertical:   "vertical",
	LegendHorizontal: "horizontal",
}

// String returns the string representation of a LegendMode.
func (m LegendMode) String() string {
	if m >= 0 && int(m) < len(legendModeNames) {
		return legendModeNames[m]
	}
	return "Unknown"
}

// ParseLegendMode parses "none", "vertical" or "horizontal".
func ParseLegendMode(s string) (LegendMode, error) {
	for i, name := range legendModeNames {
		if name == s {
			return LegendMode(i), nil
		}
	}
	return LegendNone, fmt.Errorf("%w: unknown legend mode %q", ErrInvalidConfig, s)
}

// Config holds the chart-wide settings of one render.
type Config struct {
	// Canvas size.
	Width, Height float64

	// Margin is the blank border kept around the chart.
	Margin float64

	Title      string
	TitleSize  float64
	TitleColor RGBA

	Legend      LegendMode
	LegendSize  float64
	LegendColor RGBA

	// Depth is the extrusion depth, as a fraction of the vertical radius.
	Depth float64

	// Gap is the radial separation of every slice from the center, as a
	// fraction of the radius.
	Gap float64

	// Ratio is the vertical over horizontal radius ratio, in (0, 1].
	Ratio float64

	// Default outline of every face. Slices may override it.
	LineWidth float64
	LineColor RGBA

	// Background fills the canvas before anything else when non-nil.
	Background *RGBA

	// Rounded selects the membership rule of the second rounded-wall block.
	Rounded RoundedRule
}

// DefaultConfig returns the settings of a 100x100 chart with the usual
// proportions: ratio 0.5, gap 0.1, depth 0.4 and a margin of 10.
func DefaultConfig() Config {
	return Config{
		Width:       100,
		Height:      100,
		Margin:      10,
		TitleSize:   15,
		TitleColor:  Black,
		Legend:      LegendNone,
		LegendSize:  10,
		LegendColor: Black,
		Depth:       0.4,
		Gap:         0.1,
		Ratio:       0.5,
		LineWidth:   0,
		LineColor:   Transparent,
		Rounded:     RoundedCovering,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
		value float64
	}{
		{finite(c.Width) && c.Width > 0, "width", c.Width},
		{finite(c.Height) && c.Height > 0, "height", c.Height},
		{finite(c.Margin) && c.Margin >= 0, "margin", c.Margin},
		{finite(c.Ratio) && c.Ratio > 0 && c.Ratio <= 1, "ratio", c.Ratio},
		{finite(c.Depth) && c.Depth >= 0, "depth", c.Depth},
		{finite(c.Gap) && c.Gap >= 0, "gap", c.Gap},
		{finite(c.LineWidth) && c.LineWidth >= 0, "line width", c.LineWidth},
		{finite(c.TitleSize) && c.TitleSize > 0, "title size", c.TitleSize},
		{finite(c.LegendSize) && c.LegendSize > 0, "legend size", c.LegendSize},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s %v out of range", ErrInvalidConfig, chk.field, chk.value)
		}
	}
	if c.Legend < LegendNone || c.Legend > LegendHorizontal {
		return fmt.Errorf("%w: legend mode %d", ErrInvalidConfig, c.Legend)
	}
	if c.Rounded < RoundedCovering || c.Rounded > RoundedStartOnly {
		return fmt.Errorf("%w: rounded rule %d", ErrInvalidConfig, c.Rounded)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Outline is the stroke applied to the faces of a slice.
type Outline struct {
	Color RGBA
	Width float64
}

// Slice is one weighted category of the chart.
type Slice struct {
	// Value is the non-negative magnitude of the slice.
	Value float64

	// Explode moves the slice away from the center, in units of radius.
	Explode float64

	// Color is the fill color of the top face.
	Color RGBA

	// Outline overrides Config.LineColor/LineWidth when non-nil.
	Outline *Outline

	// Label is shown in the legend.
	Label string
}
