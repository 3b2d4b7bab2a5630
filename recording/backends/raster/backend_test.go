package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/recording"
	"github.com/gogpu/pie3d/text"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}
	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func square(x0, y0, x1, y1 float64) *pie3d.Path {
	p := pie3d.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestFillSolid(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(20, 20); err != nil {
		t.Fatal(err)
	}
	b.FillPath(square(5, 5, 15, 15), pie3d.Solid{Color: pie3d.RGB(1, 0, 0)})
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	if got := rgbaAt(b.Image(), 10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside = %v, want opaque red", got)
	}
	if got := rgbaAt(b.Image(), 1, 1); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestFillGradient(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(100, 10)
	g := pie3d.NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, pie3d.Black).
		AddColorStop(1, pie3d.White)
	b.FillPath(square(0, 0, 100, 10), g)

	left, right := rgbaAt(b.Image(), 2, 5), rgbaAt(b.Image(), 97, 5)
	if left.R >= right.R {
		t.Errorf("gradient left %v should be darker than right %v", left, right)
	}
	if right.A != 255 {
		t.Errorf("gradient alpha = %d, want 255", right.A)
	}
}

func TestStroke(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(30, 30)

	b.StrokePath(square(5, 5, 25, 25), pie3d.Black, 2)
	if got := rgbaAt(b.Image(), 15, 5); got.A < 200 {
		t.Errorf("on the edge = %v, want ink", got)
	}
	if got := rgbaAt(b.Image(), 15, 15); got.A != 0 {
		t.Errorf("inside = %v, want untouched", got)
	}
	// The closing edge is stroked too.
	if got := rgbaAt(b.Image(), 5, 15); got.A < 200 {
		t.Errorf("closing edge = %v, want ink", got)
	}

	// Zero width and transparent strokes draw nothing.
	c := NewBackend()
	_ = c.Begin(30, 30)
	c.StrokePath(square(5, 5, 25, 25), pie3d.Black, 0)
	c.StrokePath(square(5, 5, 25, 25), pie3d.Transparent, 3)
	if got := rgbaAt(c.Image(), 15, 5); got.A != 0 {
		t.Errorf("invisible stroke left %v", got)
	}
}

// inkRight returns one past the rightmost column holding ink, or 0.
func inkRight(img image.Image) int {
	r := img.Bounds()
	for x := r.Max.X - 1; x >= r.Min.X; x-- {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if rgbaAt(img, x, y).A > 0 {
				return x + 1
			}
		}
	}
	return 0
}

func TestSetFont(t *testing.T) {
	mono, err := text.NewSource(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}

	draw := func(src *text.Source) int {
		b := NewBackend()
		if src != nil {
			if err := b.SetFont(src); err != nil {
				t.Fatal(err)
			}
		}
		_ = b.Begin(120, 30)
		b.DrawText("iiiiii", 2, 22, 20, pie3d.Black)
		return inkRight(b.Image())
	}

	regular, monospaced := draw(nil), draw(mono)
	if regular == 0 {
		t.Fatal("no text drawn")
	}
	// Six 'i' are much wider in a monospaced face.
	if monospaced < regular+20 {
		t.Errorf("ink ends at %d with Go Mono, %d with Go Regular", monospaced, regular)
	}
}

func TestDrawBeforeBegin(t *testing.T) {
	b := NewBackend()
	b.FillPath(square(0, 0, 1, 1), pie3d.Solid{Color: pie3d.Black})
	b.StrokePath(square(0, 0, 1, 1), pie3d.Black, 1)
	b.DrawText("x", 0, 0, 10, pie3d.Black)
	if b.Image().Bounds() != (image.Rectangle{}) {
		t.Error("Image() before Begin should be empty")
	}
}

func TestChartPlaybackPNG(t *testing.T) {
	cfg := pie3d.DefaultConfig()
	cfg.Width, cfg.Height = 200, 160
	cfg.Title = "Share"
	bg := pie3d.White
	cfg.Background = &bg
	slices := []pie3d.Slice{
		{Value: 1, Color: pie3d.MustParseHex("#ff0000")},
		{Value: 1, Color: pie3d.MustParseHex("#0000ff")},
	}

	rec := recording.NewRecorder(200, 160)
	if err := pie3d.Render(rec, cfg, slices); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := rec.FinishRecording().Export("png", &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 160) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := rgbaAt(img, 1, 158); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want background white", got)
	}
}
