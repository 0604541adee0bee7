package plots

import (
	"errors"
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/fepplots/src/fep"
)

// ErrTooFewWindows is returned by pair plots given fewer than two windows.
var ErrTooFewWindows = errors.New("plots: need at least two windows")

// densitySet caches one KDE per table column for the duration of a plot call.
type densitySet struct {
	table  fep.EnergyTable
	curves []fep.Density
	errs   []error
}

func estimateDensities(tbl fep.EnergyTable) *densitySet {
	set := &densitySet{
		table:  tbl,
		curves: make([]fep.Density, tbl.Len()),
		errs:   make([]error, tbl.Len()),
	}
	opts := fep.DefaultKDEOptions()
	for i, col := range tbl.Columns {
		set.curves[i], set.errs[i] = fep.KDE(col.Values, opts)
	}
	return set
}

// column resolves a possibly negative window index to its column and density.
func (s *densitySet) column(i int) (fep.Column, fep.Density, error) {
	col, err := s.table.At(i)
	if err != nil {
		return fep.Column{}, fep.Density{}, err
	}
	if i < 0 {
		i += s.table.Len()
	}
	if s.errs[i] != nil {
		return col, fep.Density{}, fmt.Errorf("window %q: %w", col.Name, s.errs[i])
	}
	return col, s.curves[i], nil
}

// densityCell describes where a pair is drawn: cell size and optional x label.
type densityCell struct {
	W, H   int
	XLabel string
}

// renderDensityPair overlays the densities of windows w1 and w2 as shaded
// curves in one cell, with a legend naming both windows.
func renderDensityPair(set *densitySet, w1 int, c1 drawing.Color, w2 int, c2 drawing.Color, cell densityCell) (image.Image, error) {
	col1, d1, err := set.column(w1)
	if err != nil {
		return nil, err
	}
	col2, d2, err := set.column(w2)
	if err != nil {
		return nil, err
	}
	xe, ye := newExtent(), newExtent()
	xe.add(d1.X...)
	xe.add(d2.X...)
	ye.add(d1.Y...)
	ye.add(d2.Y...)

	ch := cellChart(cell.W, cell.H, cell.XLabel)
	ch.XAxis.Range = axisRange(xe)
	ch.XAxis.Ticks = niceTicks(xe.min, xe.max, 4)
	ch.YAxis.Range, ch.YAxis.Ticks = zeroAnchoredAxis(ye.max, 4)
	ch.Series = []chart.Series{
		chart.ContinuousSeries{Name: col1.Name, XValues: d1.X, YValues: d1.Y, Style: densityStyle(c1)},
		chart.ContinuousSeries{Name: col2.Name, XValues: d2.X, YValues: d2.Y, Style: densityStyle(c2)},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{FontSize: cellFontSize(cell.W)})}
	return renderChart(ch)
}

// windowPair is one panel of the adjacent-window density grid.
type windowPair struct {
	w1, w2 int
	c1, c2 drawing.Color
}

// adjacentPair picks the windows for a slot: the first window against its
// successor in blue, the last against its predecessor in red, and every
// interior window against its successor in orange. The partner is gray.
func adjacentPair(slot, n int) windowPair {
	switch {
	case slot == 0:
		return windowPair{w1: 0, w2: 1, c1: colorBlue, c2: colorGray}
	case slot == n-1:
		return windowPair{w1: -1, w2: -2, c1: colorRed, c2: colorGray}
	default:
		return windowPair{w1: slot, w2: slot + 1, c1: colorOrange, c2: colorGray}
	}
}

// matrixColors colors the diagonal blue/blue and every other cell gray/orange.
func matrixColors(i, j int) (drawing.Color, drawing.Color) {
	if i == j {
		return colorBlue, colorBlue
	}
	return colorGray, colorOrange
}

// PlotPDF writes PDF.png from the end-state energies, windowed by lambda.
func PlotPDF(opts Options, a, b fep.StateEnergies) error {
	return writePlot(opts, PDFFile, func() (image.Image, error) {
		return RenderPDF(opts, a, b)
	})
}

// RenderPDF builds the per-window energy differences and draws the adjacent
// pair grid.
func RenderPDF(opts Options, a, b fep.StateEnergies) (image.Image, error) {
	tbl, err := fep.WindowEnergies(a, b)
	if err != nil {
		return nil, err
	}
	return renderPairGrid(opts, tbl, "Probability Density Function of U")
}

// PlotPDFdE writes PDF_dE.png from a prepared dEs table.
func PlotPDFdE(opts Options, tbl fep.EnergyTable) error {
	return writePlot(opts, PDFdEFile, func() (image.Image, error) {
		return RenderPDFdE(opts, tbl)
	})
}

// RenderPDFdE draws the adjacent pair grid for a prepared dEs table.
func RenderPDFdE(opts Options, tbl fep.EnergyTable) (image.Image, error) {
	return renderPairGrid(opts, tbl, "Probability Density Function of dEs")
}

// PlotPDFMatrix writes PDF_Matrix.png from the end-state energies.
func PlotPDFMatrix(opts Options, a, b fep.StateEnergies) error {
	return writePlot(opts, PDFMatrixFile, func() (image.Image, error) {
		return RenderPDFMatrix(opts, a, b)
	})
}

// RenderPDFMatrix windows the end-state energies and draws every window
// against every other window.
func RenderPDFMatrix(opts Options, a, b fep.StateEnergies) (image.Image, error) {
	tbl, err := fep.WindowEnergies(a, b)
	if err != nil {
		return nil, err
	}
	return renderMatrix(opts, tbl, "Probability Density Function Matrix")
}

// PlotPDFMatrixDEs writes PDF_Matrix_dEs.png from a prepared dEs table.
func PlotPDFMatrixDEs(opts Options, tbl fep.EnergyTable) error {
	return writePlot(opts, PDFMatrixDEsFile, func() (image.Image, error) {
		return RenderPDFMatrixDEs(opts, tbl)
	})
}

// RenderPDFMatrixDEs draws the all-pairs matrix for a prepared dEs table.
func RenderPDFMatrixDEs(opts Options, tbl fep.EnergyTable) (image.Image, error) {
	return renderMatrix(opts, tbl, "Probability Density Function Matrix")
}

func renderPairGrid(opts Options, tbl fep.EnergyTable, title string) (image.Image, error) {
	opts = opts.withDefaults()
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	n := tbl.Len()
	if n < 2 {
		return nil, fmt.Errorf("%s: %d window(s): %w", title, n, ErrTooFewWindows)
	}
	rows, cols := GridShape(n, 2)
	cellW, cellH := ComputeCellSize(opts.GridWidth, cols, 0.6)
	set := estimateDensities(tbl)

	tiles := make([]image.Image, rows*cols)
	drawn := 0
	for slot := 0; slot < n; slot++ {
		p := adjacentPair(slot, n)
		cell := densityCell{W: cellW, H: cellH}
		if slot+cols >= n { // lowest panel of its column
			cell.XLabel = labelEnergy
		}
		img, err := renderDensityPair(set, p.w1, p.c1, p.w2, p.c2, cell)
		if err != nil {
			fep.Warnf("%s: panel %d: %v", title, slot, err)
			continue
		}
		tiles[slot] = img
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("%s: no panel could be drawn: %w", title, fep.ErrTooFewSamples)
	}
	return composeGrid(grid{Title: title, Rows: rows, Cols: cols, CellW: cellW, CellH: cellH, Tiles: tiles}), nil
}

func renderMatrix(opts Options, tbl fep.EnergyTable, title string) (image.Image, error) {
	opts = opts.withDefaults()
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	n := tbl.Len()
	cellW, cellH := ComputeCellSize(opts.GridWidth, n, 1.0)
	set := estimateDensities(tbl)

	tiles := make([]image.Image, n*n)
	drawn := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c1, c2 := matrixColors(i, j)
			cell := densityCell{W: cellW, H: cellH}
			if i == n-1 {
				cell.XLabel = labelEnergy
			}
			img, err := renderDensityPair(set, i, c1, j, c2, cell)
			if err != nil {
				fep.Debugf("%s: cell (%d,%d): %v", title, i, j, err)
				continue
			}
			tiles[i*n+j] = img
			drawn++
		}
	}
	if drawn == 0 {
		return nil, fmt.Errorf("%s: no cell could be drawn: %w", title, fep.ErrTooFewSamples)
	}
	fep.Debugf("%s: %d of %d cells drawn", title, drawn, n*n)
	return composeGrid(grid{Title: title, Rows: n, Cols: n, CellW: cellW, CellH: cellH, Tiles: tiles}), nil
}
