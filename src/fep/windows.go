package fep

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormatLambda renders a lambda value the way the estimator stage labels
// windows: shortest representation, with a trailing ".0" for whole numbers.
func FormatLambda(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// WindowLabel names the window between two lambda states, e.g. "0.0_0.05".
func WindowLabel(lambdaA, lambdaB float64) string {
	return FormatLambda(lambdaA) + "_" + FormatLambda(lambdaB)
}

// WindowEnergies pairs state A and state B samples row by row, computes the
// energy difference E = B - A and groups the differences into one column per
// window. Rows are ordered by state-A lambda (stable for equal lambdas) and
// windows appear in order of first occurrence after that ordering.
func WindowEnergies(a, b StateEnergies) (EnergyTable, error) {
	if err := a.Validate(); err != nil {
		return EnergyTable{}, fmt.Errorf("state A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return EnergyTable{}, fmt.Errorf("state B: %w", err)
	}
	if len(a.Lambda) != len(b.Lambda) {
		return EnergyTable{}, fmt.Errorf("state A rows=%d state B rows=%d: %w", len(a.Lambda), len(b.Lambda), ErrLengthMismatch)
	}

	order := make([]int, len(a.Lambda))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return a.Lambda[order[i]] < a.Lambda[order[j]] })

	var table EnergyTable
	index := map[string]int{}
	for _, row := range order {
		label := WindowLabel(a.Lambda[row], b.Lambda[row])
		col, ok := index[label]
		if !ok {
			col = len(table.Columns)
			index[label] = col
			table.Columns = append(table.Columns, Column{Name: label})
		}
		table.Columns[col].Values = append(table.Columns[col].Values, b.QSum[row]-a.QSum[row])
	}
	Debugf("grouped %d samples into %d windows", len(order), len(table.Columns))
	return table, nil
}
