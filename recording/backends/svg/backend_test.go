package svg

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/recording"
	"github.com/gogpu/pie3d/text"
)

func square(x0, y0, x1, y1 float64) *pie3d.Path {
	p := pie3d.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func render(t *testing.T, draw func(b *Backend)) string {
	t.Helper()
	b := NewBackend()
	if err := b.Begin(40, 30); err != nil {
		t.Fatal(err)
	}
	draw(b)
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend(svg) error = %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *svg.Backend")
	}
}

func TestDocument(t *testing.T) {
	out := render(t, func(*Backend) {})
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("document does not start with an XML declaration: %q", out[:min(len(out), 20)])
	}
	if !strings.Contains(out, `width="40"`) || !strings.Contains(out, `height="30"`) {
		t.Errorf("size missing from %q", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("document is not closed")
	}
}

func TestFillSolid(t *testing.T) {
	out := render(t, func(b *Backend) {
		b.FillPath(square(5, 5, 15, 15), pie3d.Solid{Color: pie3d.MustParseHex("#ff0000")})
	})
	if !strings.Contains(out, `d="M5 5 L15 5 L15 15 L5 15 Z"`) {
		t.Errorf("path data missing: %s", out)
	}
	if !strings.Contains(out, "fill:#ff0000") {
		t.Errorf("fill color missing: %s", out)
	}
	if strings.Contains(out, "fill-opacity") {
		t.Errorf("opaque fill should not carry an opacity: %s", out)
	}
}

func TestFillTranslucent(t *testing.T) {
	c, _ := pie3d.ParseHex("#00ff00", 0x80)
	out := render(t, func(b *Backend) {
		b.FillPath(square(0, 0, 1, 1), pie3d.Solid{Color: c})
	})
	if !strings.Contains(out, "fill-opacity:0.502") {
		t.Errorf("fill-opacity missing: %s", out)
	}
}

func TestFillGradient(t *testing.T) {
	g := pie3d.NewLinearGradient(10, 0, 30, 0).
		AddColorStop(0, pie3d.Black).
		AddColorStop(1, pie3d.White)
	out := render(t, func(b *Backend) {
		b.FillPath(square(0, 0, 40, 30), g)
		b.FillPath(square(0, 0, 40, 30), g)
	})

	for _, want := range []string{
		`<linearGradient id="gradient1" gradientUnits="userSpaceOnUse" x1="10" y1="0" x2="30" y2="0">`,
		`<stop offset="0" stop-color="#000000" stop-opacity="1"/>`,
		`<stop offset="1" stop-color="#ffffff" stop-opacity="1"/>`,
		"fill:url(#gradient1)",
		"fill:url(#gradient2)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestStroke(t *testing.T) {
	open := pie3d.NewPath()
	open.MoveTo(0, 0)
	open.LineTo(10, 10)

	out := render(t, func(b *Backend) {
		b.StrokePath(open, pie3d.Black, 1.5)
		b.StrokePath(square(0, 0, 1, 1), pie3d.Black, 0)
		b.StrokePath(square(0, 0, 1, 1), pie3d.Transparent, 2)
	})
	if !strings.Contains(out, `d="M0 0 L10 10"`) {
		t.Errorf("open stroke should not be closed: %s", out)
	}
	if !strings.Contains(out, "stroke-width:1.5") || !strings.Contains(out, "stroke-linejoin:round") {
		t.Errorf("stroke style missing: %s", out)
	}
	if n := strings.Count(out, "<path"); n != 1 {
		t.Errorf("got %d paths, want 1 (invisible strokes skipped)", n)
	}
}

func TestDrawText(t *testing.T) {
	out := render(t, func(b *Backend) {
		b.DrawText("A&B", 10, 20.25, 12, pie3d.Black)
	})
	if !strings.Contains(out, `transform="translate(10,20.25)"`) {
		t.Errorf("text position missing: %s", out)
	}
	if !strings.Contains(out, "A&amp;B") {
		t.Errorf("text not escaped: %s", out)
	}
	if !strings.Contains(out, "font-family:"+FontFamily+";font-size:12px") {
		t.Errorf("font missing: %s", out)
	}
}

func TestSetFont(t *testing.T) {
	mono, err := text.NewSource(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorderWithFont(60, 40, mono)
	rec.DrawText("x", 2, 20, 10, pie3d.Black)

	var buf bytes.Buffer
	if err := rec.FinishRecording().Export("svg", &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), "font-family:'Go Mono', sans-serif;") {
		t.Errorf("recording font not used: %s", buf.String())
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{1.23456, "1.235"},
		{-0.0001, "0"},
		{-3.5, "-3.5"},
		{100.1, "100.1"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartExport(t *testing.T) {
	cfg := pie3d.DefaultConfig()
	cfg.Width, cfg.Height = 200, 160
	cfg.Title = "Share"
	slices := []pie3d.Slice{
		{Value: 2, Color: pie3d.MustParseHex("#ff0000"), Label: "Red"},
		{Value: 1, Color: pie3d.MustParseHex("#0000ff"), Label: "Blue"},
	}

	rec := recording.NewRecorder(200, 160)
	if err := pie3d.Render(rec, cfg, slices); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := rec.FinishRecording().Export("svg", &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ">Share</text>") {
		t.Errorf("title missing from %s", out)
	}
	if !strings.Contains(out, "<linearGradient") {
		t.Error("rounded wall gradient missing")
	}
}
