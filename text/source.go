package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/pie3d/internal/cache"
)

// faceCacheSize bounds the number of sizes kept open per source.
const faceCacheSize = 16

// Extents are the ink metrics of a string, in pixels relative to its
// baseline origin. YBearing is negative for ink above the baseline.
type Extents struct {
	XBearing, YBearing float64
	Width, Height      float64
}

// Source is a loaded font. It is safe for concurrent use.
type Source struct {
	name string
	data []byte
	otf  *opentype.Font
	gtf  *gotext.Font

	// mu serializes use of the cached faces, which are stateful.
	mu    sync.Mutex
	faces *cache.Cache[float64, font.Face]

	// HarfbuzzShaper keeps internal buffers and is not safe for concurrent use.
	shapers sync.Pool
}

// NewSource parses TTF or OTF data.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &Source{
		data: data,
		otf:  otf,
		gtf: face.Font,
		faces: cache.New[float64, font.Face](faceCacheSize, func(f font.Face) {
			_ = f.Close()
		}),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if name, err := otf.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the shared Go Regular source.
func Default() *Source {
	defaultOnce.Do(func() {
		s, err := NewSource(goregular.TTF)
		if err != nil {
			panic("text: embedded Go Regular font: " + err.Error())
		}
		defaultSource = s
	})
	return defaultSource
}

// Name returns the font family name, or "" if the font has none.
func (s *Source) Name() string {
	return s.name
}

// Data returns the font file the source was parsed from, for encoders
// that embed it. The slice must not be modified.
func (s *Source) Data() []byte {
	return s.data
}

// face returns the unhinted 72 DPI face at size, so one point maps to one
// pixel. Caller must hold s.mu.
func (s *Source) face(size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return s.faces.GetOrCreate(size, func() (font.Face, error) {
		return opentype.NewFace(s.otf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	})
}
