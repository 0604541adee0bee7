package fep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// KDEOptions controls the evaluation grid of a kernel density estimate.
type KDEOptions struct {
	// GridSize is the number of evaluation points (default 200).
	GridSize int
	// Cut extends the grid this many bandwidths past the data range (default 3).
	Cut float64
	// Bandwidth overrides Scott's rule when > 0.
	Bandwidth float64
}

// DefaultKDEOptions evaluates 200 points with 3 bandwidths of padding, the
// usual seaborn/scipy density defaults.
func DefaultKDEOptions() KDEOptions { return KDEOptions{GridSize: 200, Cut: 3} }

// Density is a kernel density estimate evaluated on an evenly spaced grid.
type Density struct {
	X         []float64
	Y         []float64
	Bandwidth float64
	N         int
}

// Area integrates the density over its grid; close to 1 for a wide enough cut.
func (d Density) Area() float64 {
	if len(d.X) < 2 {
		return 0
	}
	return integrate.Trapezoidal(d.X, d.Y)
}

// Peak returns the grid position and value of the density maximum.
func (d Density) Peak() (x, y float64) {
	if len(d.Y) == 0 {
		return math.NaN(), math.NaN()
	}
	i := floats.MaxIdx(d.Y)
	return d.X[i], d.Y[i]
}

// ScottBandwidth returns std * n^(-1/5) using the sample standard deviation.
func ScottBandwidth(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	return stat.StdDev(values, nil) * math.Pow(n, -1.0/5.0)
}

// KDE estimates the probability density of values with a Gaussian kernel.
// Non-finite values are ignored. A sample without spread gets a unit
// bandwidth so it still renders as a narrow bump.
func KDE(values []float64, opts KDEOptions) (Density, error) {
	finite := Column{Values: values}.Finite()
	if len(finite) < 2 {
		return Density{}, fmt.Errorf("kde: %d samples: %w", len(finite), ErrTooFewSamples)
	}
	if opts.GridSize < 2 {
		opts.GridSize = DefaultKDEOptions().GridSize
	}
	if opts.Cut <= 0 {
		opts.Cut = DefaultKDEOptions().Cut
	}
	bw := opts.Bandwidth
	if bw <= 0 {
		bw = ScottBandwidth(finite)
	}
	if bw <= 0 || math.IsNaN(bw) {
		bw = 1
	}

	lo := floats.Min(finite) - opts.Cut*bw
	hi := floats.Max(finite) + opts.Cut*bw
	xs := floats.Span(make([]float64, opts.GridSize), lo, hi)
	ys := make([]float64, opts.GridSize)

	norm := 1 / (float64(len(finite)) * bw * math.Sqrt(2*math.Pi))
	for i, x := range xs {
		var sum float64
		for _, v := range finite {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		ys[i] = sum * norm
	}
	return Density{X: xs, Y: ys, Bandwidth: bw, N: len(finite)}, nil
}
