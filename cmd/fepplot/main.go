// fepplot renders FEP diagnostic plots from a results bundle.
//
// The bundle is JSON (full-line // comments allowed) holding the tables an
// estimator stage already computed: convergence series per estimator, the
// Zwanzig per-lambda table, per-window dEs and the raw end-state energies.
// Every selected plot is written as a fixed-name PNG into -out, the working
// directory by default. Plots whose bundle section is missing are skipped.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iafilius/fepplots/src/fep"
	"github.com/iafilius/fepplots/src/plots"
)

const defaultBundle = "fep_results.jsonc"

func main() {
	defaults := plots.DefaultOptions()
	bundle := flag.String("bundle", defaultBundle, "Path to the results bundle (JSONC)")
	outDir := flag.String("out", defaults.OutDir, "Directory receiving the PNG files")
	plotList := flag.String("plots", "all", "Comma separated plots to render ("+strings.Join(plotKeys(), ",")+") or 'all'")
	width := flag.Int("width", defaults.Width, "Width in pixels of single-panel plots")
	height := flag.Int("height", defaults.Height, "Height in pixels of single-panel plots")
	gridWidth := flag.Int("grid-width", defaults.GridWidth, "Width in pixels of multi-panel figures (cells derive from it)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	if !fep.SetLogLevel(*logLevel) {
		fmt.Printf("unknown log level %q\n", *logLevel)
		os.Exit(2)
	}
	opts := plots.Options{OutDir: *outDir, Width: *width, Height: *height, GridWidth: *gridWidth}
	if err := RunRenderMode(*bundle, opts, *plotList); err != nil {
		fmt.Printf("[fepplot] %v\n", err)
		os.Exit(1)
	}
}
