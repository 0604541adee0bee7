package plots

import (
	"fmt"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/fepplots/src/fep"
)

// extent tracks the finite min/max over any number of value slices.
type extent struct {
	min, max float64
	n        int
}

func newExtent() extent { return extent{min: math.MaxFloat64, max: -math.MaxFloat64} }

func (e *extent) add(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < e.min {
			e.min = v
		}
		if v > e.max {
			e.max = v
		}
		e.n++
	}
}

func (e extent) ok() bool { return e.n > 0 }

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		// Degenerate spans widen around the value so a flat series stays centered.
		pad := math.Max(math.Abs(min)*0.1, 1)
		min, max = min-pad, max+pad
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 1, 2, 2.5, 5, 10 scaled by a power of ten
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Ceil(min/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= max+bestStep*1e-9; v += bestStep {
		// keep values on the step lattice despite accumulated float error
		v = math.Round(v/bestStep) * bestStep
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}

// valueAxis returns a padded range with matching ticks for the extent. An
// empty extent yields a nil range so go-chart autoscales.
func valueAxis(e extent, ticks int) (chart.Range, []chart.Tick) {
	if !e.ok() {
		return nil, nil
	}
	lo, hi := niceAxisBounds(e.min, e.max)
	return &chart.ContinuousRange{Min: lo, Max: hi}, niceTicks(lo, hi, ticks)
}

// zeroAnchoredAxis is valueAxis with the lower bound pinned at 0, used for densities.
func zeroAnchoredAxis(max float64, ticks int) (*chart.ContinuousRange, []chart.Tick) {
	if math.IsNaN(max) || max <= 0 {
		max = 1
	}
	_, hi := niceAxisBounds(0, max)
	return &chart.ContinuousRange{Min: 0, Max: hi}, niceTicks(0, hi, ticks)
}

// lambdaTicks labels every lambda when they fit, and falls back to nice ticks otherwise.
func lambdaTicks(lambdas []float64, lo, hi float64, maxLabels int) []chart.Tick {
	if len(lambdas) == 0 || len(lambdas) > maxLabels {
		return niceTicks(lo, hi, 8)
	}
	uniq := make([]float64, 0, len(lambdas))
	seen := map[float64]bool{}
	for _, l := range lambdas {
		if seen[l] || math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		seen[l] = true
		uniq = append(uniq, l)
	}
	sort.Float64s(uniq)
	ticks := make([]chart.Tick, len(uniq))
	for i, l := range uniq {
		ticks[i] = chart.Tick{Value: l, Label: fep.FormatLambda(l)}
	}
	return ticks
}

// padSingle pads a one-point series to two points; go-chart needs a
// non-degenerate x range per series.
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 || len(ys) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}

// finitePoints drops every (x, y) pair where either value is NaN or infinite.
// go-chart's line stroker does not terminate on non-finite coordinates.
func finitePoints(xs, ys []float64) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
