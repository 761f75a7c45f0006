// Package experiment - run configuration, result types, and error definitions
// for the sorting benchmark harness.
package experiment

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/katalvlaran/sortlab/sorting"
)

// Sentinel errors for harness execution.
var (
	// ErrNoSizes is returned when the run has an empty size sweep.
	ErrNoSizes = errors.New("experiment: no input sizes")

	// ErrBadSize is returned when a requested input size is not positive.
	ErrBadSize = errors.New("experiment: input size must be positive")

	// ErrNoTrials is returned when the trial count is below 1.
	ErrNoTrials = errors.New("experiment: trials must be at least 1")

	// ErrBadPowerRange is returned for a power-of-two range outside
	// 1 <= min <= max <= 24.
	ErrBadPowerRange = errors.New("experiment: invalid power-of-two range")

	// ErrUnsorted is returned when an algorithm under measurement hands
	// back a result that is not a sorted slice of the input's length.
	// It signals a bug in the algorithm, never in the harness input.
	ErrUnsorted = errors.New("experiment: algorithm returned an unsorted result")
)

// Defaults for Run; the CLI exposes each as a flag with the same value.
const (
	// DefaultMinPower is the smallest default size exponent (2^7 = 128).
	DefaultMinPower = 7

	// DefaultMaxPower is the largest default size exponent (2^12 = 4096).
	DefaultMaxPower = 12

	// DefaultTrials is the number of timed repetitions per (algorithm, size).
	DefaultTrials = 3

	// DefaultSeed seeds the input generator. Zero is honored verbatim so
	// that out-of-the-box runs are reproducible across machines.
	DefaultSeed int64 = 0

	// DefaultOutDir is where artifacts land unless WithOutDir overrides it.
	DefaultOutDir = "plots"
)

// maxSizePower bounds WithPowerRange: 2^24 ints is the largest sweep the
// harness accepts before memory, not time, dominates a run.
const maxSizePower = 24

// maxQuadraticN caps the O(n²) algorithms. Bubble and Insertion are only
// measured for n <= 1024; above that a single trial would dwarf the rest
// of the sweep.
const maxQuadraticN = 1024

// Artifact file names, fixed under Options.OutDir.
const (
	csvFileName  = "results.csv"
	jsonFileName = "results.json"
	plotFileName = "complexity.png"
)

// Algorithm is one registry row: a display name, the sort under test,
// and whether the quadratic size cap applies to it.
type Algorithm struct {
	// Name labels the algorithm in logs, CSV rows, and the chart legend.
	Name string

	// Fn is the pure sort being measured.
	Fn func([]int) []int

	// Quadratic marks O(n²) algorithms, which skip sizes above 1024.
	Quadratic bool
}

// Algorithms returns the fixed registry in measurement order, which is
// also the CSV row order and the chart legend order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "Bubble", Fn: sorting.BubbleSort[int], Quadratic: true},
		{Name: "Insertion", Fn: sorting.InsertionSort[int], Quadratic: true},
		{Name: "Merge", Fn: sorting.MergeSort[int]},
		{Name: "Quick", Fn: sorting.QuickSort[int]},
		{Name: "Stdlib", Fn: sorting.StdSort[int]},
	}
}

// Measurement is one aggregated cell of the run grid: all trials of one
// algorithm at one input size, reduced to mean and population standard
// deviation of the elapsed seconds.
type Measurement struct {
	Algorithm    string  `json:"algorithm"`
	N            int     `json:"n"`
	AvgSeconds   float64 `json:"avg_seconds"`
	StdevSeconds float64 `json:"stdev_seconds"`
}

// Report is the manifest of one completed run: enough metadata to
// reproduce the inputs (seed, sizes, trials) plus the machine context
// the timings depend on. It is persisted verbatim as results.json.
type Report struct {
	// RunID is a fresh UUID minted per run.
	RunID string `json:"run_id"`

	// CreatedAt is the UTC start time of the run.
	CreatedAt time.Time `json:"created_at"`

	// Seed, Trials, and Sizes reproduce the generated inputs exactly.
	Seed   int64 `json:"seed"`
	Trials int   `json:"trials"`
	Sizes  []int `json:"sizes"`

	// CPUs and GoVersion record the machine context of the timings.
	CPUs      int    `json:"cpus"`
	GoVersion string `json:"go_version"`

	// Measurements holds one entry per measured (algorithm, size) cell,
	// in registry-then-size order.
	Measurements []Measurement `json:"measurements"`

	// Absolute paths of the three artifacts written under OutDir.
	CSVPath  string `json:"csv_path"`
	JSONPath string `json:"json_path"`
	PlotPath string `json:"plot_path"`
}

// Option configures a run via functional arguments. An invalid Option
// (e.g. an inverted power range) is recorded internally and surfaced as
// an error when Run is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one benchmark run.
type Options struct {
	// Sizes is the input-size sweep, attempted in the given order.
	Sizes []int

	// Trials is the number of timed repetitions per (algorithm, size).
	Trials int

	// Seed feeds the single math/rand stream generating every input.
	Seed int64

	// OutDir receives results.csv, results.json, and complexity.png.
	OutDir string

	// Logger carries run progress; defaults to a text handler on stderr.
	Logger *slog.Logger

	// Progress, when non-nil, receives a progress bar over the
	// measurement grid (one tick per measured cell).
	Progress io.Writer

	// OnMeasurement fires after each cell is aggregated, before
	// artifacts are written. Useful for streaming tables.
	OnMeasurement func(Measurement)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with the documented defaults:
// sizes 128..4096, 3 trials, seed 0, "plots" output directory, a text
// slog logger on stderr, no progress bar, and a no-op measurement hook.
func DefaultOptions() Options {
	return Options{
		Sizes:         DefaultSizes(),
		Trials:        DefaultTrials,
		Seed:          DefaultSeed,
		OutDir:        DefaultOutDir,
		Logger:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Progress:      nil,
		OnMeasurement: func(Measurement) {},
		err:           nil,
	}
}

// DefaultSizes returns the default sweep: powers of two from
// 2^DefaultMinPower through 2^DefaultMaxPower.
func DefaultSizes() []int {
	sizes := make([]int, 0, DefaultMaxPower-DefaultMinPower+1)
	for p := DefaultMinPower; p <= DefaultMaxPower; p++ {
		sizes = append(sizes, 1<<p)
	}

	return sizes
}

// PowerOfTwoSizes expands [minPow, maxPow] into the sweep
// {2^minPow, ..., 2^maxPow}. Bounds outside 1 <= minPow <= maxPow <= 24
// yield ErrBadPowerRange. The CLI uses this to validate its flags before
// a run starts.
func PowerOfTwoSizes(minPow, maxPow int) ([]int, error) {
	if minPow < 1 || minPow > maxPow || maxPow > maxSizePower {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadPowerRange, minPow, maxPow)
	}

	sizes := make([]int, 0, maxPow-minPow+1)
	for p := minPow; p <= maxPow; p++ {
		sizes = append(sizes, 1<<p)
	}

	return sizes, nil
}

// WithSizes replaces the size sweep with a copy of sizes, attempted in
// the given order. Sizes need not be powers of two; each must be >= 1
// (validated when Run is invoked).
func WithSizes(sizes []int) Option {
	return func(o *Options) {
		o.Sizes = slices.Clone(sizes)
	}
}

// WithPowerRange sets the sweep to powers of two 2^minPow..2^maxPow.
// An invalid range is surfaced as ErrBadPowerRange by Run.
func WithPowerRange(minPow, maxPow int) Option {
	return func(o *Options) {
		sizes, err := PowerOfTwoSizes(minPow, maxPow)
		if err != nil {
			o.err = err

			return
		}
		o.Sizes = sizes
	}
}

// WithTrials sets the repetitions per (algorithm, size) cell.
// Values below 1 are rejected by Run with ErrNoTrials.
func WithTrials(trials int) Option {
	return func(o *Options) {
		o.Trials = trials
	}
}

// WithSeed seeds the input generator. The seed is used verbatim - zero
// included - so equal seeds always regenerate equal inputs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOutDir redirects the artifacts. An empty string keeps the default.
func WithOutDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.OutDir = dir
		}
	}
}

// WithLogger replaces the run logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgress enables a textual progress bar over the measurement grid,
// written to w. Pass os.Stderr to keep stdout clean for data.
func WithProgress(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Progress = w
		}
	}
}

// WithOnMeasurement registers a callback invoked after every aggregated
// cell, in measurement order.
func WithOnMeasurement(fn func(Measurement)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMeasurement = fn
		}
	}
}

// validate rejects ill-formed run configurations before any measurement.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrNoTrials, o.Trials)
	}
	if len(o.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, n := range o.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrBadSize, n)
		}
	}

	return nil
}
