package plots

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/fepplots/src/fep"
)

// renderChart renders a go-chart chart to PNG and decodes it back so it can be
// composed into grids or written as-is.
func renderChart(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", ch.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart %q: %w", ch.Title, err)
	}
	return img, nil
}

// savePNG encodes img and writes it as dir/name, creating dir when needed.
// The file is only written once encoding succeeded.
func savePNG(dir, name string, img image.Image) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", name, err)
	}
	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// writePlot runs render and saves its image under the fixed file name.
func writePlot(opts Options, name string, render func() (image.Image, error)) error {
	defer fep.TimeTrack(time.Now(), name)
	opts = opts.withDefaults()
	img, err := render()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := savePNG(opts.OutDir, name, img); err != nil {
		return err
	}
	b := img.Bounds()
	fep.Infof("wrote %s (%dx%d)", filepath.Join(opts.OutDir, name), b.Dx(), b.Dy())
	return nil
}

// baseChart returns a single-panel chart with the title band and padding
// shared by the full-size plots.
func baseChart(title string, w, h int) chart.Chart {
	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 16},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 56, Left: 20, Right: 24, Bottom: 24}},
	}
}

// cellChart returns an untitled chart sized for one grid cell.
func cellChart(w, h int, xLabel string) chart.Chart {
	fs := cellFontSize(w)
	return chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 8, Right: 10, Bottom: 8}},
		XAxis: chart.XAxis{
			Name:      xLabel,
			NameStyle: chart.Style{FontSize: fs + 2},
			Style:     chart.Style{FontSize: fs},
		},
		YAxis: chart.YAxis{Style: chart.Style{FontSize: fs}},
	}
}

// axisRange returns a continuous range for an extent, widening a zero span.
func axisRange(e extent) chart.Range {
	if !e.ok() {
		return nil
	}
	lo, hi := e.min, e.max
	if hi <= lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
