// Package fep holds the prepared result tables consumed by the plotting
// procedures: convergence series, Zwanzig per-lambda tables, per-window energy
// samples and raw end-state energies. It also carries the local reshaping the
// plots need (windowing, column access) and the kernel density estimate used
// by the probability-density plots.
//
// The tables are produced by an upstream estimator stage; nothing here
// computes free energies.
package fep

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyTable is returned when a table or series carries no rows.
	ErrEmptyTable = errors.New("fep: empty table")
	// ErrLengthMismatch is returned when paired columns differ in row count.
	ErrLengthMismatch = errors.New("fep: column length mismatch")
	// ErrTooFewSamples is returned when a density cannot be estimated.
	ErrTooFewSamples = errors.New("fep: too few finite samples")
	// ErrUnknownColumn is returned for an out-of-range column index.
	ErrUnknownColumn = errors.New("fep: unknown column")
)

// Estimator names used by the convergence plot legend.
const (
	EstimatorZwanzig = "ZW"
	EstimatorTI      = "TI"
	EstimatorBAR     = "BAR"
	EstimatorMBAR    = "MBAR"
)

// ConvergenceSeries is the free energy estimate of one estimator as a
// function of simulation length.
type ConvergenceSeries struct {
	Estimator string    `json:"estimator,omitempty"`
	Steps     []float64 `json:"steps"`
	DG        []float64 `json:"dG"`
}

// Validate checks that the series is non-empty and its columns line up.
func (s ConvergenceSeries) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("convergence %s: %w", s.Estimator, ErrEmptyTable)
	}
	if len(s.Steps) != len(s.DG) {
		return fmt.Errorf("convergence %s: steps=%d dG=%d: %w", s.Estimator, len(s.Steps), len(s.DG), ErrLengthMismatch)
	}
	return nil
}

// ZwanzigTable is the per-lambda output of the Zwanzig estimator. Column
// order follows the upstream table: lambda, dGf, sum dGf, dGr, sum dGr.
type ZwanzigTable struct {
	Lambda []float64 `json:"lambda"`
	DGf    []float64 `json:"dGf"`
	SumDGf []float64 `json:"sum_dGf"`
	DGr    []float64 `json:"dGr"`
	SumDGr []float64 `json:"sum_dGr"`
}

// Rows returns the row count (length of the lambda column).
func (z ZwanzigTable) Rows() int { return len(z.Lambda) }

// Column returns the column at the upstream position (0..4).
func (z ZwanzigTable) Column(i int) ([]float64, error) {
	switch i {
	case 0:
		return z.Lambda, nil
	case 1:
		return z.DGf, nil
	case 2:
		return z.SumDGf, nil
	case 3:
		return z.DGr, nil
	case 4:
		return z.SumDGr, nil
	}
	return nil, fmt.Errorf("zwanzig column %d: %w", i, ErrUnknownColumn)
}

// Validate checks that forward and reverse columns match the lambda column.
func (z ZwanzigTable) Validate() error {
	n := len(z.Lambda)
	if n == 0 {
		return fmt.Errorf("zwanzig: %w", ErrEmptyTable)
	}
	for i := 1; i <= 4; i++ {
		col, _ := z.Column(i)
		if len(col) != n {
			return fmt.Errorf("zwanzig column %d: rows=%d lambda=%d: %w", i, len(col), n, ErrLengthMismatch)
		}
	}
	return nil
}

// Column is one named series of an EnergyTable, typically the energy samples
// of a single lambda window.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Finite returns the column values with NaN and ±Inf removed. Ragged tables
// are padded with NaN upstream.
func (c Column) Finite() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// EnergyTable holds per-window energy samples, one column per window, with
// the row index being the sample (step) index.
type EnergyTable struct {
	Columns []Column `json:"columns"`
}

// Len returns the number of columns (windows).
func (t EnergyTable) Len() int { return len(t.Columns) }

// MaxRows returns the longest column length.
func (t EnergyTable) MaxRows() int {
	m := 0
	for _, c := range t.Columns {
		if len(c.Values) > m {
			m = len(c.Values)
		}
	}
	return m
}

// At returns column i, accepting negative indices counted from the end
// (-1 is the last column).
func (t EnergyTable) At(i int) (Column, error) {
	n := len(t.Columns)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Column{}, fmt.Errorf("energy column %d of %d: %w", i, n, ErrUnknownColumn)
	}
	return t.Columns[i], nil
}

// Names returns the column names in order.
func (t EnergyTable) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that the table has at least one non-empty column.
func (t EnergyTable) Validate() error {
	if len(t.Columns) == 0 || t.MaxRows() == 0 {
		return fmt.Errorf("energies: %w", ErrEmptyTable)
	}
	return nil
}

// StateEnergies are the raw per-sample energies of one end state, each tagged
// with the lambda it was sampled at.
type StateEnergies struct {
	Lambda []float64 `json:"lambda"`
	QSum   []float64 `json:"q_sum"`
}

// Validate checks that lambda and energy columns line up.
func (s StateEnergies) Validate() error {
	if len(s.Lambda) == 0 {
		return fmt.Errorf("state energies: %w", ErrEmptyTable)
	}
	if len(s.Lambda) != len(s.QSum) {
		return fmt.Errorf("state energies: lambda=%d q_sum=%d: %w", len(s.Lambda), len(s.QSum), ErrLengthMismatch)
	}
	return nil
}
