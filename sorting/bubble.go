package sorting

// BubbleSort — exchange sort with early exit.
//
// Description:
//
//	Repeatedly sweeps the working copy, swapping adjacent out-of-order
//	pairs. Each sweep bubbles the largest remaining element to the end
//	of the unsorted prefix, so the scanned range shrinks by one per
//	pass. A sweep with zero swaps proves the slice is sorted and stops
//	the loop early.
//
// Algorithm Outline:
//  1. Copy the input into out.
//  2. For end = len(out) down to 2:
//     2.1 Sweep i = 1..end-1; swap out[i-1], out[i] when out[i] < out[i-1].
//     2.2 If the sweep swapped nothing, stop.
//  3. Return out.
//
// Only strictly out-of-order pairs are swapped, so equal elements never
// pass each other: the sort is stable.
//
// Complexity:
//
//	Time   = O(n²) worst/average, O(n) on already-sorted input
//	Memory = O(n) (the returned copy)
func BubbleSort[T Ordered](in []T) []T {
	out := clone(in)

	for end := len(out); end > 1; end-- {
		swapped := false
		for i := 1; i < end; i++ {
			if out[i] < out[i-1] {
				out[i-1], out[i] = out[i], out[i-1]
				swapped = true
			}
		}
		// A clean sweep means the remaining prefix is already sorted.
		if !swapped {
			break
		}
	}

	return out
}
