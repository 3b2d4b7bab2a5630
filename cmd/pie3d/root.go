package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pie3d"
	"github.com/gogpu/pie3d/internal/chartfile"
	"github.com/gogpu/pie3d/internal/entry"
	"github.com/gogpu/pie3d/recording"

	"github.com/gogpu/pie3d/text"

	// Output formats.
	_ "github.com/gogpu/pie3d/recording/backends/eps"
	_ "github.com/gogpu/pie3d/recording/backends/pdf"
	_ "github.com/gogpu/pie3d/recording/backends/raster"
	_ "github.com/gogpu/pie3d/recording/backends/svg"
)

var errNoOutput = errors.New("output name is mandatory (-o)")

// options holds the raw flag values. Colors stay strings until the flags
// given on the command line are applied.
type options struct {
	background  string
	lineWidth   float64
	lineColor   string
	gap         float64
	depth       float64
	format      string
	width       int
	height      int
	input       string
	legendColor string
	legendSize  float64
	legend      string
	margin      float64
	output      string
	ratio       float64
	titleSize   float64
	title       string
	titleColor  string
	config      string
	rounded     string
	font        string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var opts options
	def := pie3d.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pie3d [flags] -o <file> [value#RRGGBB:explode:label ...]",
		Short: "Draw an extruded pie chart",
		Long: `Draw a pseudo-3D pie chart as PNG, SVG, PDF or EPS.

Every argument is one slice: a value, a fill color, an optional explode
fraction and a legend label, e.g. "3#cc3333:0.2:Apples". Slices can also
come from a file given with -i (one per line) or from a TOML chart file
given with --config. Flags set explicitly override the chart file.`,
		Example: `  pie3d -w 400 -t Fruit -l '#000000' -o fruit.png 3#cc3333::Apples 2#33cc33:0.2:Pears
  pie3d --config fruit.toml -f SVG -o -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVarP(&opts.output, "output", "o", "", "output file name, '-' is stdout")
	f.StringVarP(&opts.format, "format", "f", "", "output format: PNG, SVG, PDF or EPS")
	f.IntVarP(&opts.width, "width", "w", 0, "width in pixels (defaults to the height, or 100)")
	f.IntVarP(&opts.height, "height", "h", 0, "height in pixels (defaults to the width, or 100)")
	f.Float64VarP(&opts.margin, "margin", "m", def.Margin, "margin in pixels")
	f.StringVarP(&opts.background, "background", "b", "", "background color (ex: #ffffff)")
	f.StringVarP(&opts.title, "title", "t", "", "chart title")
	f.Float64VarP(&opts.titleSize, "title-size", "s", def.TitleSize, "title size in pixels")
	f.StringVarP(&opts.titleColor, "title-color", "T", def.TitleColor.Hex(), "title color")
	f.StringVarP(&opts.legendColor, "legend-color", "l", def.LegendColor.Hex(), "legend color, enables the legend")
	f.Float64VarP(&opts.legendSize, "legend-size", "L", def.LegendSize, "legend size in pixels, enables the legend")
	f.StringVar(&opts.legend, "legend", "", "legend mode: none, vertical or horizontal")
	f.Float64VarP(&opts.lineWidth, "line-width", "c", def.LineWidth, "pie line width")
	f.StringVarP(&opts.lineColor, "line-color", "C", "#000000", "pie line color")
	f.Float64VarP(&opts.gap, "explode", "d", def.Gap, "explode of every slice, between 0 and 1")
	f.Float64VarP(&opts.depth, "extrusion", "e", def.Depth, "extrusion, between 0 and 1")
	f.Float64VarP(&opts.ratio, "ratio", "r", def.Ratio, "height to width ratio of the pie, between 0 and 1")
	f.StringVar(&opts.rounded, "rounded", def.Rounded.String(), "rounded wall rule: covering, start-stop or start-only")
	f.StringVarP(&opts.input, "input", "i", "", "file with one slice per line")
	f.StringVar(&opts.config, "config", "", "TOML chart file")
	f.StringVar(&opts.font, "font", "", "TTF or OTF file for the title and legend (default Go Regular)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log the layout to stderr")
	// -h is the height, so help gets no shorthand.
	f.Bool("help", false, "help for pie3d")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	pie3d.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	defer pie3d.SetLogger(nil)

	if opts.output == "" {
		return errNoOutput
	}

	cfg := pie3d.DefaultConfig()
	var slices []pie3d.Slice
	fileFormat := ""

	if opts.config != "" {
		file, err := chartfile.Load(opts.config)
		if err != nil {
			return err
		}
		if err := file.Apply(&cfg); err != nil {
			return err
		}
		if file.Chart.Format != nil {
			fileFormat = *file.Chart.Format
		}
		if file.Chart.Width != nil && file.Chart.Height == nil {
			cfg.Height = cfg.Width
		} else if file.Chart.Height != nil && file.Chart.Width == nil {
			cfg.Width = cfg.Height
		}
		// The outline fallback of file slices uses the file's line settings.
		s, err := file.PieSlices(cfg)
		if err != nil {
			return err
		}
		slices = append(slices, s...)
	}

	if err := applyFlags(cmd, opts, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.input != "" {
		s, err := readEntries(opts.input)
		if err != nil {
			return err
		}
		slices = append(slices, s...)
	}
	for _, arg := range args {
		s, err := entry.Parse(arg)
		if err != nil {
			return err
		}
		slices = append(slices, s)
	}

	format, err := outputFormat(opts.format, fileFormat, opts.output)
	if err != nil {
		return err
	}

	src := text.Default()
	if opts.font != "" {
		if src, err = text.NewSourceFromFile(opts.font); err != nil {
			return err
		}
	}

	w, h := int(math.Round(cfg.Width)), int(math.Round(cfg.Height))
	rec := recording.NewRecorderWithFont(w, h, src)
	if err := pie3d.Render(rec, cfg, slices); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := rec.FinishRecording().Export(format, &buf); err != nil {
		return err
	}
	pie3d.Logger().Debug("pie3d: wrote chart", "format", format, "bytes", buf.Len(), "slices", len(slices))

	if opts.output == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("can't open output file: %w", err)
	}
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *pie3d.Config) error {
	changed := cmd.Flags().Changed

	switch {
	case changed("width") && changed("height"):
		cfg.Width, cfg.Height = float64(opts.width), float64(opts.height)
	case changed("width"):
		cfg.Width, cfg.Height = float64(opts.width), float64(opts.width)
	case changed("height"):
		cfg.Width, cfg.Height = float64(opts.height), float64(opts.height)
	}

	floats := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"margin", opts.margin, &cfg.Margin},
		{"title-size", opts.titleSize, &cfg.TitleSize},
		{"legend-size", opts.legendSize, &cfg.LegendSize},
		{"line-width", opts.lineWidth, &cfg.LineWidth},
		{"explode", opts.gap, &cfg.Gap},
		{"extrusion", opts.depth, &cfg.Depth},
		{"ratio", opts.ratio, &cfg.Ratio},
	}
	for _, fl := range floats {
		if changed(fl.name) {
			*fl.dst = fl.src
		}
	}
	if changed("title") {
		cfg.Title = opts.title
	}

	colors := []struct {
		name string
		src  string
		dst  *pie3d.RGBA
	}{
		{"title-color", opts.titleColor, &cfg.TitleColor},
		{"legend-color", opts.legendColor, &cfg.LegendColor},
		{"line-color", opts.lineColor, &cfg.LineColor},
	}
	for _, c := range colors {
		if !changed(c.name) {
			continue
		}
		v, err := pie3d.ParseHex(c.src, 0xff)
		if err != nil {
			return fmt.Errorf("--%s: %w", c.name, err)
		}
		*c.dst = v
	}
	// A line width without a color draws black lines.
	if changed("line-width") && !changed("line-color") && cfg.LineColor.A == 0 {
		cfg.LineColor = pie3d.Black
	}
	if changed("background") {
		bg, err := pie3d.ParseHex(opts.background, 0xff)
		if err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		cfg.Background = &bg
	}

	switch {
	case changed("legend"):
		m, err := pie3d.ParseLegendMode(strings.ToLower(opts.legend))
		if err != nil {
			return err
		}
		cfg.Legend = m
	case (changed("legend-color") || changed("legend-size")) && cfg.Legend == pie3d.LegendNone:
		cfg.Legend = pie3d.LegendVertical
	}
	if changed("rounded") {
		r, err := pie3d.ParseRoundedRule(opts.rounded)
		if err != nil {
			return err
		}
		cfg.Rounded = r
	}
	return nil
}

func readEntries(path string) ([]pie3d.Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slices, err := entry.ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slices, nil
}

// outputFormat picks the registered backend name for the output.
func outputFormat(flag, file, output string) (string, error) {
	name := flag
	if name == "" {
		name = file
	}
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	if name == "" {
		name = "png"
	}
	name = strings.ToLower(name)
	if !recording.IsRegistered(name) {
		return "", fmt.Errorf("unknown format %s (known: %s)", name, strings.Join(recording.Backends(), ", "))
	}
	return name, nil
}
