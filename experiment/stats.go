package experiment

import "math"

// meanStdev reduces the elapsed times of one measurement cell to their
// arithmetic mean and POPULATION standard deviation. The divisor is n,
// not n-1: the trials are the whole population being summarized, not a
// sample of a larger one. A single trial therefore reports stdev 0, and
// an empty input yields (0, 0).
//
// Complexity: O(n) time, O(1) space.
func meanStdev(samples []float64) (mean, stdev float64) {
	n := float64(len(samples))
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean = sum / n

	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	stdev = math.Sqrt(sq / n)

	return mean, stdev
}
