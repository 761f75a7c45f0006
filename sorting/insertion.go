package sorting

// InsertionSort — sorted-prefix insertion.
//
// Description:
//
//	Grows a sorted prefix one element at a time. Each key is pulled out
//	of the copy, strictly greater elements shift right to open a gap,
//	and the key lands after any elements equal to it.
//
// Algorithm Outline:
//  1. Copy the input into out.
//  2. For i = 1..len(out)-1:
//     2.1 key = out[i]; j = i-1.
//     2.2 While j >= 0 and out[j] > key: shift out[j] to out[j+1]; j--.
//     2.3 Place key at out[j+1].
//  3. Return out.
//
// The shift condition is strictly greater, so a key never crosses an
// equal element: the sort is stable.
//
// Complexity:
//
//	Time   = O(n²) worst/average, O(n) on already-sorted input
//	Memory = O(n) (the returned copy)
func InsertionSort[T Ordered](in []T) []T {
	out := clone(in)

	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && out[j] > key {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}

	return out
}
