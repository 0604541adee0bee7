package plots

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/fepplots/src/fep"
)

// maxLambdaLabels caps how many lambda values get their own x tick label.
const maxLambdaLabels = 60

// PlotHysteresis writes Hysteresis.png: cumulative forward dG against the
// reversed, negated cumulative reverse dG over lambda.
func PlotHysteresis(opts Options, z fep.ZwanzigTable) error {
	return writePlot(opts, HysteresisFile, func() (image.Image, error) {
		return RenderHysteresis(opts, z)
	})
}

// RenderHysteresis plots column 2 (sum dGf) and column 4 (sum dGr) reversed
// and negated, both against column 0 (lambda).
func RenderHysteresis(opts Options, z fep.ZwanzigTable) (image.Image, error) {
	ps, err := hysteresisSeries(z)
	if err != nil {
		return nil, err
	}
	return renderLambdaPoints(opts, "Hysteresis between ΔGf and ΔGr", ps)
}

// lambdaPoints holds the forward and reverse point sets of a lambda plot.
type lambdaPoints struct {
	XF, YF []float64
	XR, YR []float64
}

func hysteresisSeries(z fep.ZwanzigTable) (lambdaPoints, error) {
	if err := z.Validate(); err != nil {
		return lambdaPoints{}, err
	}
	rev := make([]float64, z.Rows())
	for i, v := range z.SumDGr {
		rev[len(rev)-1-i] = -v
	}
	return lambdaPoints{XF: z.Lambda, YF: z.SumDGf, XR: z.Lambda, YR: rev}, nil
}

// PlotDGByLambda writes dG_vs_Lambda.png: per-window forward and reverse dG.
func PlotDGByLambda(opts Options, z fep.ZwanzigTable) error {
	return writePlot(opts, DGByLambdaFile, func() (image.Image, error) {
		return RenderDGByLambda(opts, z)
	})
}

// RenderDGByLambda plots dGf against lambda from the second row on, and the
// negated dGr of the preceding row against the same lambdas, so both series
// describe the window ending at that lambda.
func RenderDGByLambda(opts Options, z fep.ZwanzigTable) (image.Image, error) {
	ps, err := dgByLambdaSeries(z)
	if err != nil {
		return nil, err
	}
	return renderLambdaPoints(opts, "dG_vs_Lambda", ps)
}

func dgByLambdaSeries(z fep.ZwanzigTable) (lambdaPoints, error) {
	if err := z.Validate(); err != nil {
		return lambdaPoints{}, err
	}
	n := z.Rows()
	if n < 2 {
		return lambdaPoints{}, fmt.Errorf("dG by lambda: %d lambda rows, need 2: %w", n, fep.ErrEmptyTable)
	}
	xs := z.Lambda[1:]
	rev := make([]float64, n-1)
	for i, v := range z.DGr[:n-1] {
		rev[i] = -v
	}
	return lambdaPoints{XF: xs, YF: z.DGf[1:], XR: xs, YR: rev}, nil
}

// renderLambdaPoints draws the ΔGf/ΔGr scatter pair shared by the hysteresis
// and per-lambda plots, with small rotated lambda tick labels.
func renderLambdaPoints(opts Options, title string, ps lambdaPoints) (image.Image, error) {
	opts = opts.withDefaults()
	xe, ye := newExtent(), newExtent()
	var series []chart.Series
	add := func(name string, xs, ys []float64, col int) {
		xs, ys = finitePoints(xs, ys)
		if len(xs) == 0 {
			fep.Warnf("%s: series %s has no finite points", title, name)
			return
		}
		st := pointStyle(cycleColor(col))
		if len(xs) == 1 { // emphasize single-point sets
			st.DotWidth = singlePointDotWidth
		}
		xs, ys = padSingle(xs, ys)
		xe.add(xs...)
		ye.add(ys...)
		series = append(series, chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st})
	}
	add("ΔGf", ps.XF, ps.YF, 0)
	add("ΔGr", ps.XR, ps.YR, 1)
	if len(series) == 0 {
		return nil, fmt.Errorf("%s: no finite points: %w", title, fep.ErrEmptyTable)
	}

	lo, hi := xe.min, xe.max
	if hi <= lo {
		hi = lo + 1
	}
	// keep edge points off the frame
	margin := (hi - lo) * 0.03
	yRange, yTicks := valueAxis(ye, 6)

	ch := baseChart(title, opts.Width, opts.Height)
	ch.Background.Padding.Bottom = 48
	ch.XAxis = chart.XAxis{
		Name:      labelLambda,
		NameStyle: chart.Style{FontSize: 14},
		Range:     &chart.ContinuousRange{Min: lo - margin, Max: hi + margin},
		Ticks:     lambdaTicks(ps.XF, lo, hi, maxLambdaLabels),
		TickStyle: chart.Style{FontSize: 7, TextRotationDegrees: 60},
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
