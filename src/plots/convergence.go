package plots

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/fepplots/src/fep"
)

// PlotConvergence writes Convergence.png: the dG estimate of each estimator
// against the number of steps.
func PlotConvergence(opts Options, zw, ti, bar, mbar fep.ConvergenceSeries) error {
	return writePlot(opts, ConvergenceFile, func() (image.Image, error) {
		return RenderConvergence(opts, zw, ti, bar, mbar)
	})
}

// RenderConvergence draws one line per estimator, in ZW, TI, BAR, MBAR order.
// Legend names are fixed regardless of the series' own Estimator field.
func RenderConvergence(opts Options, zw, ti, bar, mbar fep.ConvergenceSeries) (image.Image, error) {
	opts = opts.withDefaults()
	named := []struct {
		name string
		s    fep.ConvergenceSeries
	}{
		{fep.EstimatorZwanzig, zw},
		{fep.EstimatorTI, ti},
		{fep.EstimatorBAR, bar},
		{fep.EstimatorMBAR, mbar},
	}
	series := make([]chart.Series, 0, len(named))
	xe, ye := newExtent(), newExtent()
	for i, n := range named {
		n.s.Estimator = n.name
		if err := n.s.Validate(); err != nil {
			return nil, err
		}
		// missing estimates leave a gap instead of a point
		xs, ys := finitePoints(n.s.Steps, n.s.DG)
		if len(xs) == 0 {
			return nil, fmt.Errorf("convergence %s: no finite points: %w", n.name, fep.ErrEmptyTable)
		}
		xs, ys = padSingle(xs, ys)
		xe.add(xs...)
		ye.add(ys...)
		series = append(series, chart.ContinuousSeries{
			Name:    n.name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(cycleColor(i)),
		})
	}

	yRange, yTicks := valueAxis(ye, 6)
	ch := baseChart("Convergence Plot", opts.Width, opts.Height)
	ch.XAxis = chart.XAxis{
		Name:      labelSteps,
		NameStyle: chart.Style{FontSize: 14},
		Range:     axisRange(xe),
	}
	ch.YAxis = chart.YAxis{
		Name:      labelDG,
		NameStyle: chart.Style{FontSize: 14},
		Range:     yRange,
		Ticks:     yTicks,
	}
	ch.Series = series
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return renderChart(ch)
}
