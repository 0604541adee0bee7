package fep

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Bundle is the serialized set of prepared tables handed over by the
// estimator stage. Any section may be absent; plots that need a missing
// section are skipped by the caller.
type Bundle struct {
	Convergence map[string]ConvergenceSeries `json:"convergence,omitempty"`
	Zwanzig     *ZwanzigTable                `json:"zwanzig,omitempty"`
	DEs         []Column                     `json:"dEs,omitempty"`
	StateA      *StateEnergies               `json:"state_a,omitempty"`
	StateB      *StateEnergies               `json:"state_b,omitempty"`
}

// ConvergenceOrder is the fixed estimator order of the convergence plot.
var ConvergenceOrder = []string{EstimatorZwanzig, EstimatorTI, EstimatorBAR, EstimatorMBAR}

// ConvergenceSet returns the four estimator series in plot order. ok is false
// unless every estimator is present.
func (b *Bundle) ConvergenceSet() (zw, ti, bar, mbar ConvergenceSeries, ok bool) {
	if b == nil || len(b.Convergence) == 0 {
		return
	}
	out := make([]ConvergenceSeries, len(ConvergenceOrder))
	for i, name := range ConvergenceOrder {
		s, present := b.Convergence[name]
		if !present {
			return
		}
		s.Estimator = name
		out[i] = s
	}
	return out[0], out[1], out[2], out[3], true
}

// EnergyTable returns the dEs section as a table.
func (b *Bundle) EnergyTable() EnergyTable {
	if b == nil {
		return EnergyTable{}
	}
	return EnergyTable{Columns: b.DEs}
}

// HasStates reports whether both end-state energy sections are present.
func (b *Bundle) HasStates() bool { return b != nil && b.StateA != nil && b.StateB != nil }

// StripJSONC reads JSON with full-line // comments and returns plain JSON.
// Inline // is left alone since string values may contain URLs or paths.
func StripJSONC(r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes(), scanner.Err()
}

// DecodeBundle parses a JSONC bundle from r.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	raw, err := StripJSONC(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &b, nil
}

// LoadBundle opens and decodes the bundle at path.
func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := DecodeBundle(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Debugf("loaded bundle %s: convergence=%d zwanzig=%t dEs=%d states=%t",
		path, len(b.Convergence), b.Zwanzig != nil, len(b.DEs), b.HasStates())
	return b, nil
}
