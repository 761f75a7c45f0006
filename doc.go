// Package sortlab is a small laboratory for comparison sorting: five
// classic algorithms with one pure contract, plus a benchmark harness
// that measures them and charts how their running time grows.
//
// 🚀 What is sortlab?
//
//	A compact, reproducibility-first library that brings together:
//		• Pure sorts: Bubble, Insertion, Merge, Quick, and the stdlib
//		  baseline, all returning fresh slices and never mutating input
//		• Generic elements: every sort works for any cmp.Ordered type
//		• An experiment harness: seeded inputs, repeated trials,
//		  mean + population stdev per (algorithm, size) cell
//		• Artifacts: results.csv, a results.json run manifest, and a
//		  log-log complexity.png chart with error bars
//
// ✨ Why choose sortlab?
//
//   - Honest timings – only the sort call sits inside the timed window
//   - Deterministic inputs – one seeded generator drives the whole run,
//     so equal seeds regenerate byte-equal input arrays
//   - Self-checking – every measured output is verified sorted before
//     it can reach a chart
//   - Extensible – stream cells with OnMeasurement, bring your own
//     slog.Logger, or add a progress bar with one option
//
// Under the hood, everything is organized under two subpackages:
//
//	sorting/    — the five pure sorts over cmp.Ordered element types
//	experiment/ — the measurement sweep, aggregation, and artifacts
//
// plus cmd/sortlab, the flag-driven command that runs a full sweep:
//
//	sortlab -min-power 7 -max-power 12 -trials 3 -seed 0 -outdir plots
//
// Quick ASCII intuition, what complexity.png makes visible:
//
//	time │        Bubble ╱
//	     │             ╱   Insertion ╱
//	     │          ╱            ╱
//	     │       ╱        ╱ Merge/Quick/Stdlib
//	     │  ╱ ╱
//	     └──────────────────────── n (log₂)
//
// Dive into README.md for full examples and the artifact formats.
//
//	go get github.com/katalvlaran/sortlab
package sortlab
