package plots

import (
	"math"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestNiceAxisBoundsDegenerateSpan(t *testing.T) {
	lo, hi := niceAxisBounds(-3.2, -3.2)
	if !(lo < -3.2 && hi > -3.2) {
		t.Fatalf("expected widened range around -3.2; got [%v,%v]", lo, hi)
	}
}

func TestNiceAxisBoundsPadsAndRounds(t *testing.T) {
	lo, hi := niceAxisBounds(0.4, 9.6)
	if lo > 0.4-0.46 || hi < 9.6+0.46 {
		t.Fatalf("expected at least 5%% padding; got [%v,%v]", lo, hi)
	}
	if lo != math.Floor(lo) || hi != math.Floor(hi) {
		t.Fatalf("expected bounds rounded to the span magnitude; got [%v,%v]", lo, hi)
	}
}

func TestNiceTicksOrderedWithinRange(t *testing.T) {
	ticks := niceTicks(-12.5, 3.5, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected ticks, got %d", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Value < -12.5 || tk.Value > 3.5 {
			t.Fatalf("tick %v outside range", tk.Value)
		}
		if i > 0 && tk.Value <= ticks[i-1].Value {
			t.Fatalf("ticks not ascending: %v after %v", tk.Value, ticks[i-1].Value)
		}
	}
	if niceTicks(0, 1, 1) != nil {
		t.Fatalf("expected nil ticks for n<2")
	}
}

func TestNiceTicksSnapLabels(t *testing.T) {
	for _, tk := range niceTicks(0, 1, 11) {
		if len(tk.Label) > 4 {
			t.Fatalf("unexpected long label %q for %v", tk.Label, tk.Value)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		250:    "250",
		-12.34: "-12.3",
		0.25:   "0.25",
		0.0005: "0.0005",
	}
	for in, want := range cases {
		if got := formatTick(in); got != want {
			t.Fatalf("formatTick(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestValueAxisEmptyExtent(t *testing.T) {
	rng, ticks := valueAxis(newExtent(), 6)
	if rng != nil || ticks != nil {
		t.Fatalf("expected nil range for empty extent, got %v %v", rng, ticks)
	}
	e := newExtent()
	e.add(math.NaN(), 2, math.Inf(1), 5)
	rng, _ = valueAxis(e, 6)
	cr := rng.(*chart.ContinuousRange)
	if cr.Min > 2 || cr.Max < 5 {
		t.Fatalf("range [%v,%v] does not cover [2,5]", cr.Min, cr.Max)
	}
}

func TestZeroAnchoredAxis(t *testing.T) {
	rng, ticks := zeroAnchoredAxis(0.37, 4)
	if rng.Min != 0 || rng.Max < 0.37 {
		t.Fatalf("expected [0, >=0.37]; got [%v,%v]", rng.Min, rng.Max)
	}
	if len(ticks) == 0 || ticks[0].Value != 0 {
		t.Fatalf("expected first tick at 0, got %v", ticks)
	}
	rng, _ = zeroAnchoredAxis(math.NaN(), 4)
	if rng.Max <= 0 {
		t.Fatalf("expected positive max for NaN input; got %v", rng.Max)
	}
}

func TestLambdaTicksSortedUnique(t *testing.T) {
	ticks := lambdaTicks([]float64{1, 0, 0.5, 0.5}, 0, 1, 10)
	if len(ticks) != 3 {
		t.Fatalf("expected 3 unique ticks, got %d", len(ticks))
	}
	want := []string{"0.0", "0.5", "1.0"}
	for i, tk := range ticks {
		if tk.Label != want[i] {
			t.Fatalf("tick %d label %q, want %q", i, tk.Label, want[i])
		}
	}
	many := make([]float64, 100)
	for i := range many {
		many[i] = float64(i) / 99
	}
	if got := lambdaTicks(many, 0, 1, 60); len(got) >= 60 {
		t.Fatalf("expected nice-tick fallback for dense lambdas, got %d ticks", len(got))
	}
}

func TestPadSingle(t *testing.T) {
	xs, ys := padSingle([]float64{5}, []float64{-1})
	if len(xs) != 2 || xs[1] <= xs[0] || ys[0] != ys[1] {
		t.Fatalf("unexpected padding: %v %v", xs, ys)
	}
	xs, _ = padSingle([]float64{1, 2}, []float64{3, 4})
	if len(xs) != 2 || xs[1] != 2 {
		t.Fatalf("multi-point series must be untouched: %v", xs)
	}
}

func TestFinitePoints(t *testing.T) {
	xs, ys := finitePoints(
		[]float64{0, 1, math.Inf(1), 3, 4},
		[]float64{10, math.NaN(), 12, 13, math.Inf(-1)},
	)
	if len(xs) != 2 || xs[0] != 0 || xs[1] != 3 || ys[0] != 10 || ys[1] != 13 {
		t.Fatalf("finitePoints = %v %v, want [0 3] [10 13]", xs, ys)
	}
	if xs, ys := finitePoints(nil, nil); len(xs) != 0 || len(ys) != 0 {
		t.Fatalf("empty input should stay empty")
	}
}
