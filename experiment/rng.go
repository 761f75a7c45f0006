// Package experiment - deterministic input generation.
//
// This file centralizes random generation for the whole harness.
//
// Goals:
//   - Determinism: same seed ⇒ identical input arrays across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Fidelity: values are drawn uniformly from [0, 10n], both ends inclusive,
//     so duplicates appear at a realistic, size-proportional rate.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The harness is single-threaded and
//     consumes the one stream strictly sequentially within a run.
package experiment

import "math/rand"

// newRNG returns a deterministic *rand.Rand for the given seed.
// The seed is used verbatim: seed 0 is a valid, reproducible stream, not
// a request for entropy. Benchmark runs must be comparable across
// machines, which rules out time- or OS-seeded sources.
//
// Complexity: O(1).
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomInts draws a fresh slice of n values from rng, each uniform over
// [0, 10n] inclusive. One slice per trial keeps measurements independent:
// no trial ever sees another trial's (sorted or unsorted) data.
//
// Complexity: O(n) time, O(n) space.
func randomInts(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(10*n + 1)
	}

	return out
}
