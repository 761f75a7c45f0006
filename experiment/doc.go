// Package experiment measures the sorting package empirically: it times
// every algorithm over a sweep of input sizes and renders the results as
// a table and a log-log comparison chart.
//
// 🚀 What is experiment?
//
//	A reproducible benchmark harness for the five sorts in package
//	sorting.  One seeded generator drives every input array, so the same
//	seed always reproduces the same data.  It's useful for:
//	  • Watching O(n²) vs O(n log n) growth on real hardware
//	  • Comparing the classic algorithms against the stdlib baseline
//	  • Producing publishable CSV tables and charts from one command
//
// ✨ Key features:
//   - fixed algorithm registry (Bubble, Insertion, Merge, Quick, Stdlib)
//   - deterministic inputs: one seeded math/rand stream per run
//   - quadratic cap: O(n²) algorithms skip sizes above 1024
//   - mean + population standard deviation over a configurable trial count
//   - three artifacts per run: results.csv, results.json, complexity.png
//   - optional progress bar and per-measurement hook
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortlab/experiment"
//
//	report, err := experiment.Run(
//	  experiment.WithPowerRange(7, 12), // sizes 128..4096
//	  experiment.WithTrials(3),
//	  experiment.WithSeed(42),
//	  experiment.WithOutDir("plots"),
//	)
//	if err != nil {
//	  // handle ErrNoTrials, ErrBadSize, or an artifact I/O error
//	}
//	fmt.Println("chart:", report.PlotPath)
//
// Timing wraps only the sort call; input generation, the post-sort
// sortedness check, logging, and aggregation all happen outside the
// timed window.  Absolute timings are machine-dependent and never
// asserted by tests - only the shape of the run is.
//
// Performance:
//
//   - One run costs Σ trials·T(algorithm, n) over the grid; the default
//     sweep finishes in seconds on current hardware.
//   - Measurement is single-threaded on purpose: parallel trials would
//     contend for cores and poison the timings.
//
// Errors:
//   - ErrNoSizes, ErrBadSize, ErrNoTrials, ErrBadPowerRange - invalid run
//     configuration, detected before any measurement.
//   - ErrUnsorted - an algorithm returned a wrong result; the run aborts
//     rather than chart garbage.
//   - I/O failures creating the output directory or writing artifacts are
//     wrapped and returned verbatim; nothing is retried.
//
// See examples in example_test.go and runnable demos under examples/.
package experiment
