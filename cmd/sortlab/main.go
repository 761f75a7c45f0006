// Command sortlab times the five sorting algorithms in this module on
// seeded random inputs and writes three artifacts into the output
// directory: results.csv (the raw table), results.json (the run
// manifest), and complexity.png (time vs input size, log-log).
//
// Usage:
//
//	sortlab
//	sortlab -min-power 7 -max-power 12 -trials 3 -seed 0 -outdir plots
//	sortlab -max-power 14 -trials 5 -outdir /tmp/sweep
//
// Input sizes are the consecutive powers of two 2^min-power through
// 2^max-power. Structured progress goes to stderr; stdout carries only
// the artifact paths, so the command composes in pipelines.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/sortlab/experiment"
)

var (
	minPower = flag.Int("min-power", experiment.DefaultMinPower, "smallest size exponent; the sweep starts at 2^min-power")
	maxPower = flag.Int("max-power", experiment.DefaultMaxPower, "largest size exponent; the sweep ends at 2^max-power")
	trials   = flag.Int("trials", experiment.DefaultTrials, "timed repetitions per (algorithm, size) cell")
	seed     = flag.Int64("seed", experiment.DefaultSeed, "input generator seed; equal seeds regenerate equal inputs")
	outdir   = flag.String("outdir", experiment.DefaultOutDir, "directory for results.csv, results.json, and complexity.png")
)

func main() {
	flag.Parse()

	sizes, err := experiment.PowerOfTwoSizes(*minPower, *maxPower)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if *trials < 1 {
		fmt.Fprintf(os.Stderr, "Error: -trials must be at least 1, got %d\n\n", *trials)
		flag.Usage()
		os.Exit(1)
	}

	report, err := experiment.Run(
		experiment.WithSizes(sizes),
		experiment.WithTrials(*trials),
		experiment.WithSeed(*seed),
		experiment.WithOutDir(*outdir),
		experiment.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
		experiment.WithProgress(os.Stderr),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results saved to %s\n", report.CSVPath)
	fmt.Printf("Report saved to %s\n", report.JSONPath)
	fmt.Printf("Plot saved to %s\n", report.PlotPath)
}
