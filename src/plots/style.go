// Package plots renders the FEP diagnostic charts. Every Plot* procedure is
// stateless: it builds its charts from the prepared tables, composes subplot
// grids where needed and writes exactly one fixed-name PNG to Options.OutDir.
// The matching Render* functions return the image without touching disk.
package plots

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Output file names.
const (
	ConvergenceFile  = "Convergence.png"
	HysteresisFile   = "Hysteresis.png"
	DGByLambdaFile   = "dG_vs_Lambda.png"
	DEsFile          = "dEs.png"
	PDFFile          = "PDF.png"
	PDFdEFile        = "PDF_dE.png"
	PDFMatrixFile    = "PDF_Matrix.png"
	PDFMatrixDEsFile = "PDF_Matrix_dEs.png"
)

const (
	labelDG      = "ΔG FEP (Kcal/mol)"
	labelLambda  = "λ"
	labelSteps   = "Number of Steps"
	labelStepsFs = "Steps (fs)"
	labelEnergy  = "U (Kcal/mol)"
)

const (
	densityFillAlpha    = 102 // 0.4 opacity
	densityStrokeWidth  = 1.5
	seriesLineWidth     = 2.0
	scatterDotWidth     = 4.0
	singlePointDotWidth = 6.0
)

// Options controls where plots go and how large they are. Zero fields take
// the values from DefaultOptions.
type Options struct {
	// OutDir receives the PNG files; "." writes to the working directory.
	OutDir string
	// Width and Height size single-panel charts.
	Width  int
	Height int
	// GridWidth sizes multi-panel figures; cell sizes derive from it.
	GridWidth int
}

// DefaultOptions returns the sizes used by the CLI.
func DefaultOptions() Options {
	return Options{OutDir: ".", Width: 1100, Height: 700, GridWidth: 1400}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.OutDir == "" {
		o.OutDir = d.OutDir
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.GridWidth <= 0 {
		o.GridWidth = d.GridWidth
	}
	return o
}

// Fixed palette. The line cycle follows the conventional tab10 order so the
// convergence estimators keep their familiar colors.
var (
	colorC0 = drawing.ColorFromHex("1f77b4")
	colorC1 = drawing.ColorFromHex("ff7f0e")
	colorC2 = drawing.ColorFromHex("2ca02c")
	colorC3 = drawing.ColorFromHex("d62728")
	colorC4 = drawing.ColorFromHex("9467bd")
	colorC5 = drawing.ColorFromHex("8c564b")

	lineCycle = []drawing.Color{colorC0, colorC1, colorC2, colorC3, colorC4, colorC5}

	colorBlue   = drawing.ColorFromHex("0000ff")
	colorGray   = drawing.ColorFromHex("808080")
	colorOrange = drawing.ColorFromHex("ffa500")
	colorRed    = drawing.ColorFromHex("ff0000")
)

func cycleColor(i int) drawing.Color { return lineCycle[i%len(lineCycle)] }

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    scatterDotWidth,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: seriesLineWidth,
		StrokeColor: col,
	}
}

// densityStyle draws a shaded curve, the fill reaching down to the x axis.
func densityStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: densityStrokeWidth,
		StrokeColor: col,
		FillColor:   col.WithAlpha(densityFillAlpha),
	}
}
