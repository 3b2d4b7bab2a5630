package eps

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/internal/clip"
	"github.com/gogpu/pie3d/recording"
)

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend("eps")
	if err != nil {
		t.Fatalf("NewBackend(eps) error = %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("eps backend is %T", backend)
	}
}

func TestBeginInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
	b := NewBackend()
	if err := b.End(); err == nil {
		t.Error("End before Begin should fail")
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before Begin should fail")
	}
}

func TestChartExport(t *testing.T) {
	cfg := pie3d.DefaultConfig()
	cfg.Width, cfg.Height = 200, 160
	cfg.Title = "Share"
	cfg.Legend = pie3d.LegendHorizontal
	cfg.LineWidth = 1
	cfg.LineColor = pie3d.Black
	slices := []pie3d.Slice{
		{Value: 2, Color: pie3d.MustParseHex("#ff0000"), Label: "Red"},
		{Value: 1, Color: pie3d.MustParseHex("#0000ff"), Label: "Blue"},
	}
	rec := recording.NewRecorder(200, 160)
	if err := pie3d.Render(rec, cfg, slices); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := rec.FinishRecording().Export("eps", &buf); err != nil {
		t.Fatalf("Export(eps) error = %v", err)
	}
	first, _, _ := strings.Cut(buf.String(), "\n")
	if first != "%!PS-Adobe-3.0 EPSF-3.0" {
		t.Errorf("first line = %q, want the EPS magic", first)
	}
	if !strings.Contains(buf.String(), "%%BoundingBox: 0 0 200 160") {
		t.Error("bounding box missing")
	}
}

func TestFixHeader(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"%%!PS-Adobe-3.0 EPSF-3.0\n%%Pages: 1\n", "%!PS-Adobe-3.0 EPSF-3.0\n%%Pages: 1\n"},
		{"%!PS-Adobe-3.0 EPSF-3.0\n", "%!PS-Adobe-3.0 EPSF-3.0\n"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := string(fixHeader([]byte(tt.in))); got != tt.want {
			t.Errorf("fixHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGradientBands(t *testing.T) {
	g := pie3d.NewLinearGradient(0, 0, 20, 0).
		AddColorStop(0, pie3d.Black).
		AddColorStop(1, pie3d.White)
	rect := [][]pie3d.Point{{{X: -5, Y: 0}, {X: 25, Y: 0}, {X: 25, Y: 10}, {X: -5, Y: 10}}}

	bands := gradientBands(g, rect)
	if len(bands) != 10 {
		t.Fatalf("got %d bands, want 10", len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].color.R <= bands[i-1].color.R {
			t.Errorf("band %d color %v not lighter than band %d", i, bands[i].color, i-1)
		}
	}

	// The end bands reach the padded parts of the rectangle.
	var total float64
	for _, b := range bands {
		for _, p := range b.polys {
			total += clip.Area(p)
		}
	}
	const overlap = 9 * bandOverlap * 10
	if want := 300 + overlap; math.Abs(total-want) > 1e-6 {
		t.Errorf("covered area = %v, want %v", total, want)
	}
}

func TestGradientBandsDegenerate(t *testing.T) {
	g := pie3d.NewLinearGradient(5, 5, 5, 5).AddColorStop(0, pie3d.White)
	rect := [][]pie3d.Point{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
	bands := gradientBands(g, rect)
	if len(bands) != 1 || bands[0].color != pie3d.White {
		t.Errorf("degenerate gradient bands = %v", bands)
	}
}
