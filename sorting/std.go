package sorting

import (
	"cmp"
	"slices"
)

// StdSort — the standard library's stable hybrid sort over a copy.
//
// Delegates to slices.SortStableFunc, the platform-native production
// sort, wrapped in the same pure contract as the hand-written sorts.
// The experiment package benchmarks the classic algorithms against this
// as the baseline.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) (the returned copy)
func StdSort[T Ordered](in []T) []T {
	out := clone(in)
	slices.SortStableFunc(out, cmp.Compare[T])

	return out
}
