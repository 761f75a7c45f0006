package experiment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/stretchr/testify/assert"
)

// floatTol is the comparison tolerance for aggregated statistics.
const floatTol = 1e-12

// TestMeanStdev_Table drives the aggregation through hand-checked cases.
// The stdev column is the POPULATION deviation (divide by n): for [2 4]
// that is 1.0, where the sample formula would give sqrt(2).
func TestMeanStdev_Table(t *testing.T) {
	cases := []struct {
		name      string
		samples   []float64
		wantMean  float64
		wantStdev float64
	}{
		{name: "empty", samples: nil, wantMean: 0, wantStdev: 0},
		{name: "single", samples: []float64{0.5}, wantMean: 0.5, wantStdev: 0},
		{name: "pair", samples: []float64{2, 4}, wantMean: 3, wantStdev: 1},
		{name: "quad", samples: []float64{1, 2, 3, 4}, wantMean: 2.5, wantStdev: math.Sqrt(1.25)},
		{name: "all equal", samples: []float64{7, 7, 7}, wantMean: 7, wantStdev: 0},
		{name: "sub-second timings", samples: []float64{0.001, 0.003, 0.002}, wantMean: 0.002, wantStdev: math.Sqrt(2.0e-6 / 3.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mean, stdev := experiment.MeanStdev(tc.samples)
			assert.InDelta(t, tc.wantMean, mean, floatTol)
			assert.InDelta(t, tc.wantStdev, stdev, floatTol)
		})
	}
}

// TestMeanStdev_NeverNegative checks stdev stays non-negative for any
// spread, including a mean-dominated one.
func TestMeanStdev_NeverNegative(t *testing.T) {
	_, stdev := experiment.MeanStdev([]float64{1e9, 1e9 + 1e-9})
	assert.GreaterOrEqual(t, stdev, 0.0)
}
