package experiment

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the fixed column order of results.csv.
var csvHeader = []string{"algorithm", "n", "avg_seconds", "stdev_seconds"}

// writeCSV renders the measurement table: the fixed header followed by
// one row per cell in measurement order. Seconds are written with 8
// decimal places; values below 1e-8 render as 0.00000000, which is
// below timer resolution anyway.
func writeCSV(path string, measurements []Measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: create %s: %w", path, err)
	}

	// csv.Writer buffers; write errors stick and surface via Error once.
	w := csv.NewWriter(f)
	_ = w.Write(csvHeader)
	for _, m := range measurements {
		_ = w.Write([]string{
			m.Algorithm,
			strconv.Itoa(m.N),
			fmt.Sprintf("%.8f", m.AvgSeconds),
			fmt.Sprintf("%.8f", m.StdevSeconds),
		})
	}
	w.Flush()

	if err = w.Error(); err != nil {
		_ = f.Close()

		return fmt.Errorf("experiment: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("experiment: close %s: %w", path, err)
	}

	return nil
}

// writeJSON persists the run manifest, pretty-printed so that two runs
// diff cleanly. Unlike the CSV, the JSON keeps full float precision.
func writeJSON(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("experiment: marshal report: %w", err)
	}
	data = append(data, '\n')

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("experiment: write %s: %w", path, err)
	}

	return nil
}
