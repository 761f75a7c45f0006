package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Run - the full measurement sweep.
//
// Description:
//
//	Times every registry algorithm on seeded random inputs across the
//	configured size sweep, aggregates each (algorithm, size) cell over
//	the trial count, and persists results.csv, results.json, and
//	complexity.png under the output directory.
//
// Algorithm Outline:
//  1. Apply options to DefaultOptions; reject invalid configurations.
//  2. Resolve and create the output directory.
//  3. Seed ONE generator from Options.Seed; it feeds every input array
//     of the run in deterministic loop order.
//  4. For each algorithm in registry order, for each eligible size in
//     sweep order (quadratic algorithms skip n > 1024), for each trial:
//     draw a fresh array, time exactly one sort call, then verify the
//     output is a sorted slice of the input's length.
//  5. Reduce each cell's trials to mean + population stdev, log the
//     summary, and fire the OnMeasurement hook.
//  6. Write the CSV table, the JSON manifest, and the chart, in that
//     order; the first failure aborts the run.
//
// Timing wraps only the sort call. Generation, verification, logging,
// aggregation, and persistence all sit outside the timed window.
//
// Determinism: equal Seed, Sizes, and Trials regenerate identical input
// arrays. The timings themselves are machine-dependent.
//
// Errors:
//   - ErrNoTrials, ErrNoSizes, ErrBadSize, ErrBadPowerRange - invalid
//     configuration, returned before any measurement.
//   - ErrUnsorted - an algorithm produced a wrong result.
//   - Wrapped I/O errors from the output directory or artifact writers.
//
// Complexity: Σ Trials·T(algorithm, n) over the measured grid, plus
// O(grid) aggregation and O(grid) artifact writing.
func Run(opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Artifact paths are absolute so the Report stays meaningful for
	// callers with a different working directory.
	outDir, err := filepath.Abs(o.OutDir)
	if err != nil {
		return nil, fmt.Errorf("experiment: resolve output dir %q: %w", o.OutDir, err)
	}
	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("experiment: create output dir %q: %w", outDir, err)
	}

	algos := Algorithms()
	report := &Report{
		RunID:        uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Seed:         o.Seed,
		Trials:       o.Trials,
		Sizes:        slices.Clone(o.Sizes),
		CPUs:         runtime.NumCPU(),
		GoVersion:    runtime.Version(),
		Measurements: make([]Measurement, 0, len(algos)*len(o.Sizes)),
		CSVPath:      filepath.Join(outDir, csvFileName),
		JSONPath:     filepath.Join(outDir, jsonFileName),
		PlotPath:     filepath.Join(outDir, plotFileName),
	}

	o.Logger.Info("experiment started",
		"run_id", report.RunID,
		"seed", o.Seed,
		"trials", o.Trials,
		"sizes", o.Sizes,
	)

	// One generator for the whole run: the draw order (registry order,
	// then sweep order, then trial order) is part of the determinism
	// contract, so reruns with one seed regenerate byte-equal inputs.
	rng := newRNG(o.Seed)

	bar := newGridBar(o.Progress, gridCells(algos, o.Sizes))

	samples := make([]float64, 0, o.Trials)
	for _, algo := range algos {
		o.Logger.Info("running", "algorithm", algo.Name)
		if bar != nil {
			bar.Describe(algo.Name)
		}

		for _, n := range o.Sizes {
			if algo.Quadratic && n > maxQuadraticN {
				continue
			}

			samples = samples[:0]
			for t := 0; t < o.Trials; t++ {
				in := randomInts(rng, n)

				start := time.Now()
				out := algo.Fn(in)
				elapsed := time.Since(start).Seconds()

				// A broken sort must abort the run, never get charted.
				if err = checkSorted(algo.Name, n, len(in), out); err != nil {
					return nil, err
				}
				samples = append(samples, elapsed)
			}

			avg, stdev := meanStdev(samples)
			m := Measurement{Algorithm: algo.Name, N: n, AvgSeconds: avg, StdevSeconds: stdev}
			report.Measurements = append(report.Measurements, m)

			o.Logger.Info("measured",
				"algorithm", m.Algorithm,
				"n", m.N,
				"avg_seconds", m.AvgSeconds,
				"stdev_seconds", m.StdevSeconds,
			)
			o.OnMeasurement(m)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	// Persist in fixed order; any failure surfaces immediately so a nil
	// error always means all three artifacts exist.
	if err = writeCSV(report.CSVPath, report.Measurements); err != nil {
		return nil, err
	}
	o.Logger.Info("results saved", "path", report.CSVPath)

	if err = writeJSON(report.JSONPath, report); err != nil {
		return nil, err
	}
	o.Logger.Info("report saved", "path", report.JSONPath)

	if err = writePlot(report.PlotPath, report.Measurements); err != nil {
		return nil, err
	}
	o.Logger.Info("plot saved", "path", report.PlotPath)

	return report, nil
}

// checkSorted validates one measured output: it must have the input's
// length and be non-decreasing. Runs after the timer stops.
//
// Complexity: O(n).
func checkSorted(name string, n, inLen int, out []int) error {
	if len(out) != inLen {
		return fmt.Errorf("%w: %s(n=%d) returned %d elements, want %d",
			ErrUnsorted, name, n, len(out), inLen)
	}
	if !slices.IsSorted(out) {
		return fmt.Errorf("%w: %s(n=%d)", ErrUnsorted, name, n)
	}

	return nil
}

// gridCells counts the (algorithm, size) cells the sweep will measure,
// excluding the sizes the quadratic cap skips.
func gridCells(algos []Algorithm, sizes []int) int {
	cells := 0
	for _, a := range algos {
		for _, n := range sizes {
			if a.Quadratic && n > maxQuadraticN {
				continue
			}
			cells++
		}
	}

	return cells
}

// newGridBar builds the optional progress bar over the measurement grid.
// Returns nil when no progress writer is configured.
func newGridBar(w io.Writer, cells int) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}

	return progressbar.NewOptions(cells,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("measuring"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
