package plots

import (
	"fmt"
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/fepplots/src/fep"
)

// PlotDEs writes dEs.png: one energy trace per window on a two-column grid.
func PlotDEs(opts Options, tbl fep.EnergyTable) error {
	return writePlot(opts, DEsFile, func() (image.Image, error) {
		return RenderDEs(opts, tbl)
	})
}

// RenderDEs draws each column against its sample index. All panels share the
// x range of the longest column.
func RenderDEs(opts Options, tbl fep.EnergyTable) (image.Image, error) {
	opts = opts.withDefaults()
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	rows, cols := GridShape(tbl.Len(), 2)
	cellW, cellH := ComputeCellSize(opts.GridWidth, cols, 0.5)
	shared := &chart.ContinuousRange{Min: 0, Max: math.Max(float64(tbl.MaxRows()-1), 1)}

	tiles := make([]image.Image, rows*cols)
	for i, col := range tbl.Columns {
		img, err := renderTrace(col, i, shared, cellW, cellH)
		if err != nil {
			fep.Warnf("dEs panel %q: %v", col.Name, err)
			continue
		}
		tiles[i] = img
	}
	return composeGrid(grid{Title: "ΔEs Plots", Rows: rows, Cols: cols, CellW: cellW, CellH: cellH, Tiles: tiles}), nil
}

func renderTrace(col fep.Column, idx int, xRange *chart.ContinuousRange, w, h int) (image.Image, error) {
	steps := make([]float64, len(col.Values))
	for i := range steps {
		steps[i] = float64(i)
	}
	xs, ys := finitePoints(steps, col.Values)
	ye := newExtent()
	ye.add(ys...)
	if len(xs) == 0 {
		return nil, fmt.Errorf("no finite samples: %w", fep.ErrEmptyTable)
	}
	xs, ys = padSingle(xs, ys)

	ch := cellChart(w, h, labelStepsFs)
	ch.XAxis.Range = xRange
	ch.YAxis.Range, ch.YAxis.Ticks = valueAxis(ye, 5)
	ch.Series = []chart.Series{chart.ContinuousSeries{
		Name:    col.Name,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 1, StrokeColor: cycleColor(idx)},
	}}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{FontSize: cellFontSize(w)})}
	return renderChart(ch)
}
