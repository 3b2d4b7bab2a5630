package pie3d

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return r, g, b, a
}

// NRGBA converts the color to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Scale multiplies the RGB channels by f and keeps alpha.
// Scale(0.5) is the dark variant used for flat side walls.
func (c RGBA) Scale(f float64) RGBA {
	return RGBA{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// Opaque returns the color with alpha forced to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex formats the RGB channels as "#rrggbb".
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// ParseHex parses a "#RRGGBB" (or "RRGGBB") string into a color whose alpha
// is alpha/255. Any other form yields ErrMalformedColor.
func ParseHex(hex string, alpha uint8) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, hex)
	}

	var ch [3]uint32
	for i := range ch {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, hex)
		}
		ch[i] = hi*16 + lo
	}

	return RGBA{
		R: float64(ch[0]) / 255,
		G: float64(ch[1]) / 255,
		B: float64(ch[2]) / 255,
		A: float64(alpha) / 255,
	}, nil
}

// MustParseHex is like ParseHex with an opaque alpha but panics on error.
// It is intended for constant colors in code and tests.
func MustParseHex(hex string) RGBA {
	c, err := ParseHex(hex, 0xff)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
