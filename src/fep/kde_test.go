package fep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iafilius/fepplots/src/fep"
)

func TestKDESymmetricSample(t *testing.T) {
	values := []float64{-2, -1, -1, 0, 0, 0, 1, 1, 2}
	d, err := fep.KDE(values, fep.DefaultKDEOptions())
	require.NoError(t, err)
	require.Len(t, d.X, 200)
	require.Len(t, d.Y, 200)
	require.Equal(t, len(values), d.N)
	require.InDelta(t, fep.ScottBandwidth(values), d.Bandwidth, 1e-12)

	require.InDelta(t, 1.0, d.Area(), 0.01)
	px, py := d.Peak()
	require.InDelta(t, 0.0, px, 0.1)
	require.Greater(t, py, 0.0)

	// grid reaches cut*bw beyond the data
	require.InDelta(t, -2-3*d.Bandwidth, d.X[0], 1e-9)
	require.InDelta(t, 2+3*d.Bandwidth, d.X[len(d.X)-1], 1e-9)
}

func TestKDEIgnoresNonFinite(t *testing.T) {
	d, err := fep.KDE([]float64{1, math.NaN(), 2, 3, math.Inf(1)}, fep.KDEOptions{GridSize: 50})
	require.NoError(t, err)
	require.Equal(t, 3, d.N)
	require.Len(t, d.X, 50)
}

func TestKDEConstantSample(t *testing.T) {
	d, err := fep.KDE([]float64{4, 4, 4}, fep.DefaultKDEOptions())
	require.NoError(t, err)
	require.Equal(t, 1.0, d.Bandwidth)
	px, _ := d.Peak()
	require.InDelta(t, 4.0, px, 0.1)
}

func TestKDETooFewSamples(t *testing.T) {
	_, err := fep.KDE([]float64{1, math.NaN()}, fep.DefaultKDEOptions())
	require.ErrorIs(t, err, fep.ErrTooFewSamples)
}

func TestKDEBandwidthOverride(t *testing.T) {
	d, err := fep.KDE([]float64{0, 1, 2, 3}, fep.KDEOptions{Bandwidth: 0.5})
	require.NoError(t, err)
	require.Equal(t, 0.5, d.Bandwidth)
}
