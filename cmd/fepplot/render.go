package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/iafilius/fepplots/src/fep"
	"github.com/iafilius/fepplots/src/plots"
)

// errMissingInput marks a plot whose bundle section is absent; it is skipped, not failed.
var errMissingInput = errors.New("bundle section missing")

type plotJob struct {
	key  string
	file string
	run  func(*fep.Bundle, plots.Options) error
}

// renderJobs lists every plot in output order.
var renderJobs = []plotJob{
	{"convergence", plots.ConvergenceFile, func(b *fep.Bundle, o plots.Options) error {
		zw, ti, bar, mbar, ok := b.ConvergenceSet()
		if !ok {
			return fmt.Errorf("convergence needs %s: %w", strings.Join(fep.ConvergenceOrder, ", "), errMissingInput)
		}
		return plots.PlotConvergence(o, zw, ti, bar, mbar)
	}},
	{"hysteresis", plots.HysteresisFile, func(b *fep.Bundle, o plots.Options) error {
		if b.Zwanzig == nil {
			return fmt.Errorf("zwanzig: %w", errMissingInput)
		}
		return plots.PlotHysteresis(o, *b.Zwanzig)
	}},
	{"dg-lambda", plots.DGByLambdaFile, func(b *fep.Bundle, o plots.Options) error {
		if b.Zwanzig == nil {
			return fmt.Errorf("zwanzig: %w", errMissingInput)
		}
		return plots.PlotDGByLambda(o, *b.Zwanzig)
	}},
	{"des", plots.DEsFile, func(b *fep.Bundle, o plots.Options) error {
		if len(b.DEs) == 0 {
			return fmt.Errorf("dEs: %w", errMissingInput)
		}
		return plots.PlotDEs(o, b.EnergyTable())
	}},
	{"pdf", plots.PDFFile, func(b *fep.Bundle, o plots.Options) error {
		if !b.HasStates() {
			return fmt.Errorf("state_a/state_b: %w", errMissingInput)
		}
		return plots.PlotPDF(o, *b.StateA, *b.StateB)
	}},
	{"pdf-de", plots.PDFdEFile, func(b *fep.Bundle, o plots.Options) error {
		if len(b.DEs) == 0 {
			return fmt.Errorf("dEs: %w", errMissingInput)
		}
		return plots.PlotPDFdE(o, b.EnergyTable())
	}},
	{"pdf-matrix", plots.PDFMatrixFile, func(b *fep.Bundle, o plots.Options) error {
		if !b.HasStates() {
			return fmt.Errorf("state_a/state_b: %w", errMissingInput)
		}
		return plots.PlotPDFMatrix(o, *b.StateA, *b.StateB)
	}},
	{"pdf-matrix-des", plots.PDFMatrixDEsFile, func(b *fep.Bundle, o plots.Options) error {
		if len(b.DEs) == 0 {
			return fmt.Errorf("dEs: %w", errMissingInput)
		}
		return plots.PlotPDFMatrixDEs(o, b.EnergyTable())
	}},
}

func plotKeys() []string {
	keys := make([]string, len(renderJobs))
	for i, j := range renderJobs {
		keys[i] = j.key
	}
	return keys
}

// parsePlotList turns "all" or a comma separated key list into a selection set.
func parsePlotList(s string) (map[string]bool, error) {
	sel := map[string]bool{}
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		for _, k := range plotKeys() {
			sel[k] = true
		}
		return sel, nil
	}
	known := map[string]bool{}
	for _, k := range plotKeys() {
		known[k] = true
	}
	var unknown []string
	for _, part := range strings.Split(s, ",") {
		k := strings.TrimSpace(part)
		if k == "" {
			continue
		}
		if !known[k] {
			unknown = append(unknown, k)
			continue
		}
		sel[k] = true
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown plot(s) %s; valid: %s", strings.Join(unknown, ","), strings.Join(plotKeys(), ","))
	}
	return sel, nil
}

// RunRenderMode loads the results bundle and writes every selected plot to
// opts.OutDir. Plots whose inputs are missing from the bundle are skipped;
// failures of the remaining plots are collected and returned together.
func RunRenderMode(bundlePath string, opts plots.Options, selection string) error {
	if bundlePath == "" {
		bundlePath = defaultBundle
	}
	sel, err := parsePlotList(selection)
	if err != nil {
		return err
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	b, err := fep.LoadBundle(bundlePath)
	if err != nil {
		return err
	}

	var errs []error
	written := 0
	for _, job := range renderJobs {
		if !sel[job.key] {
			continue
		}
		err := job.run(b, opts)
		switch {
		case err == nil:
			written++
		case errors.Is(err, errMissingInput):
			fep.Infof("skip %s: %v", job.file, err)
		default:
			fep.Errorf("%v", err)
			errs = append(errs, err)
		}
	}
	fep.Infof("rendered %d plot(s) into %s", written, opts.OutDir)
	return errors.Join(errs...)
}
