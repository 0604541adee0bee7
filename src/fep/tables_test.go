package fep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iafilius/fepplots/src/fep"
)

func TestConvergenceSeriesValidate(t *testing.T) {
	require.NoError(t, fep.ConvergenceSeries{Estimator: "TI", Steps: []float64{1, 2}, DG: []float64{-3, -3.1}}.Validate())

	err := fep.ConvergenceSeries{Estimator: "BAR"}.Validate()
	require.ErrorIs(t, err, fep.ErrEmptyTable)

	err = fep.ConvergenceSeries{Estimator: "MBAR", Steps: []float64{1, 2}, DG: []float64{1}}.Validate()
	require.ErrorIs(t, err, fep.ErrLengthMismatch)
	require.Contains(t, err.Error(), "MBAR")
}

func TestZwanzigTableColumns(t *testing.T) {
	z := fep.ZwanzigTable{
		Lambda: []float64{0, 0.5, 1},
		DGf:    []float64{0, 1, 2},
		SumDGf: []float64{0, 1, 3},
		DGr:    []float64{-1, -2, 0},
		SumDGr: []float64{-3, -2, 0},
	}
	require.NoError(t, z.Validate())
	require.Equal(t, 3, z.Rows())

	col, err := z.Column(4)
	require.NoError(t, err)
	require.Equal(t, z.SumDGr, col)

	_, err = z.Column(5)
	require.ErrorIs(t, err, fep.ErrUnknownColumn)

	z.DGr = z.DGr[:2]
	require.ErrorIs(t, z.Validate(), fep.ErrLengthMismatch)
	require.ErrorIs(t, fep.ZwanzigTable{}.Validate(), fep.ErrEmptyTable)
}

func TestEnergyTableAt(t *testing.T) {
	tbl := fep.EnergyTable{Columns: []fep.Column{
		{Name: "a", Values: []float64{1, 2, 3}},
		{Name: "b", Values: []float64{4}},
		{Name: "c", Values: []float64{5, 6}},
	}}
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, 3, tbl.MaxRows())
	require.Equal(t, []string{"a", "b", "c"}, tbl.Names())

	last, err := tbl.At(-1)
	require.NoError(t, err)
	require.Equal(t, "c", last.Name)

	prev, err := tbl.At(-2)
	require.NoError(t, err)
	require.Equal(t, "b", prev.Name)

	_, err = tbl.At(3)
	require.ErrorIs(t, err, fep.ErrUnknownColumn)
	_, err = tbl.At(-4)
	require.ErrorIs(t, err, fep.ErrUnknownColumn)

	require.ErrorIs(t, fep.EnergyTable{}.Validate(), fep.ErrEmptyTable)
}

func TestColumnFiniteDropsPadding(t *testing.T) {
	c := fep.Column{Values: []float64{1, math.NaN(), 2, math.Inf(1), math.Inf(-1), 3}}
	require.Equal(t, []float64{1, 2, 3}, c.Finite())
}
