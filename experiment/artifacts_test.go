package experiment_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleMeasurements is a small fixture spanning the formatting cases:
// a plain value, a sub-resolution value that rounds to eight zeros, and
// a second algorithm so ordering is visible.
func sampleMeasurements() []experiment.Measurement {
	return []experiment.Measurement{
		{Algorithm: "Bubble", N: 128, AvgSeconds: 0.015, StdevSeconds: 0.0025},
		{Algorithm: "Bubble", N: 256, AvgSeconds: 0.0601234567, StdevSeconds: 0},
		{Algorithm: "Merge", N: 128, AvgSeconds: 1e-9, StdevSeconds: 1e-10},
	}
}

// TestWriteCSV_TableShape checks the header, the row order, and the
// fixed 8-decimal rendering of the seconds columns.
func TestWriteCSV_TableShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.CSVFileName)
	require.NoError(t, experiment.WriteCSV(path, sampleMeasurements()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header + one row per measurement")

	assert.Equal(t, []string{"algorithm", "n", "avg_seconds", "stdev_seconds"}, rows[0])
	assert.Equal(t, []string{"Bubble", "128", "0.01500000", "0.00250000"}, rows[1])
	assert.Equal(t, []string{"Bubble", "256", "0.06012346", "0.00000000"}, rows[2])
	// Sub-resolution values flatten to zero in the fixed-point table.
	assert.Equal(t, []string{"Merge", "128", "0.00000000", "0.00000000"}, rows[3])
}

// TestWriteCSV_EmptyTable still writes the header, so downstream tools
// always see a well-formed file.
func TestWriteCSV_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.CSVFileName)
	require.NoError(t, experiment.WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "algorithm,n,avg_seconds,stdev_seconds\n", string(data))
}

// TestWriteCSV_MissingDir surfaces the I/O failure instead of creating
// parents implicitly; directory creation is Run's job.
func TestWriteCSV_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", experiment.CSVFileName)
	err := experiment.WriteCSV(path, sampleMeasurements())
	require.Error(t, err)
	assert.ErrorContains(t, err, "create")
}

// TestWriteJSON_RoundTrip persists a full report and reads it back.
func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.JSONFileName)
	report := &experiment.Report{
		RunID:        "5aa2c698-6bb1-44b4-a323-8b8c1e466d2a",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Seed:         42,
		Trials:       3,
		Sizes:        []int{128, 256},
		CPUs:         8,
		GoVersion:    "go1.23.4",
		Measurements: sampleMeasurements(),
		CSVPath:      "/tmp/out/results.csv",
		JSONPath:     path,
		PlotPath:     "/tmp/out/complexity.png",
	}
	require.NoError(t, experiment.WriteJSON(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got experiment.Report
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, report.RunID, got.RunID)
	assert.True(t, got.CreatedAt.Equal(report.CreatedAt), "timestamp must round-trip")
	assert.Equal(t, report.Seed, got.Seed)
	assert.Equal(t, report.Sizes, got.Sizes)
	// JSON keeps full precision; the CSV's 8-decimal rounding must not leak here.
	assert.Equal(t, report.Measurements, got.Measurements)
}

// TestWriteJSON_UsesSnakeCaseKeys pins the manifest's wire format.
func TestWriteJSON_UsesSnakeCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.JSONFileName)
	require.NoError(t, experiment.WriteJSON(path, &experiment.Report{RunID: "x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"run_id", "created_at", "go_version", "measurements", "csv_path", "json_path", "plot_path"} {
		assert.Contains(t, raw, key)
	}
}

// TestWritePlot_RendersPNG exercises the chart writer end to end,
// including the log-scale clamping of sub-resolution values.
func TestWritePlot_RendersPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.PlotFileName)
	measurements := []experiment.Measurement{
		{Algorithm: "Bubble", N: 128, AvgSeconds: 0.010, StdevSeconds: 0.001},
		{Algorithm: "Bubble", N: 256, AvgSeconds: 0.045, StdevSeconds: 0.002},
		{Algorithm: "Merge", N: 128, AvgSeconds: 0.0005, StdevSeconds: 0.0001},
		// stdev exceeding the mean must clamp instead of crossing zero
		{Algorithm: "Merge", N: 256, AvgSeconds: 0.0011, StdevSeconds: 0.0030},
		// zero mean must clamp to the plot floor instead of breaking the log axis
		{Algorithm: "Quick", N: 128, AvgSeconds: 0, StdevSeconds: 0},
		{Algorithm: "Quick", N: 256, AvgSeconds: 0.0008, StdevSeconds: 0},
	}
	require.NoError(t, experiment.WritePlot(path, measurements))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "chart file must not be empty")
}

// TestWritePlot_SkipsAbsentSeries renders a table where the quadratic
// algorithms have no rows at all, as happens when every requested size
// sits above the cap.
func TestWritePlot_SkipsAbsentSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), experiment.PlotFileName)
	measurements := []experiment.Measurement{
		{Algorithm: "Merge", N: 2048, AvgSeconds: 0.0004, StdevSeconds: 0.00005},
		{Algorithm: "Quick", N: 2048, AvgSeconds: 0.0003, StdevSeconds: 0.00004},
		{Algorithm: "Stdlib", N: 2048, AvgSeconds: 0.0002, StdevSeconds: 0.00003},
	}
	require.NoError(t, experiment.WritePlot(path, measurements))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
