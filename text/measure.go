package text

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Measure returns the extents of str at size.
//
// The bearings and height come from the ink bounds of the glyphs; the width
// is the shaped advance, which includes kerning and side bearings. Empty
// strings and invalid sizes measure as zero.
func (s *Source) Measure(str string, size float64) Extents {
	str = norm.NFC.String(str)
	if str == "" {
		return Extents{}
	}

	s.mu.Lock()
	f, err := s.face(size)
	if err != nil {
		s.mu.Unlock()
		return Extents{}
	}
	bounds, _ := font.BoundString(f, str)
	s.mu.Unlock()

	return Extents{
		XBearing: fixedToFloat64(bounds.Min.X),
		YBearing: fixedToFloat64(bounds.Min.Y),
		Width:    s.advance(str, size),
		Height:   fixedToFloat64(bounds.Max.Y - bounds.Min.Y),
	}
}

// advance shapes str as a single run and returns its total advance.
func (s *Source) advance(str string, size float64) float64 {
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(runes),
		// Face is not safe for concurrent use; Font is.
		Face:     gotext.NewFace(s.gtf),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shapers.Put(hb)

	adv := fixedToFloat64(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv
}

// detectDirection returns the direction of the first strong character.
func detectDirection(runes []rune) di.Direction {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
