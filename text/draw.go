package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Draw paints str onto dst with its baseline origin at (x, y).
func (s *Source) Draw(dst draw.Image, str string, x, y, size float64, col color.Color) {
	str = norm.NFC.String(str)
	if str == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.face(size)
	if err != nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(str)
}
