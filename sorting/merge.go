package sorting

// MergeSort — top-down merge sort.
//
// Description:
//
//	Splits the slice at the midpoint, sorts both halves recursively,
//	and merges the two sorted halves into a fresh result. Recursion
//	bottoms out at slices of length <= 1, which are returned as copies,
//	so no call ever hands back memory shared with the input.
//
// Algorithm Outline:
//  1. If len(in) <= 1, return a copy of in.
//  2. mid = len(in) / 2.
//  3. left  = MergeSort(in[:mid]), right = MergeSort(in[mid:]).
//  4. Merge: walk both halves front to front, appending the smaller
//     head; on ties take the LEFT head. Append the leftover tail.
//
// Taking the left head on ties keeps equal elements in their original
// relative order: the sort is stable.
//
// Complexity:
//
//	Time   = O(n log n) in all cases
//	Memory = O(n) auxiliary per merge, O(log n) recursion depth
func MergeSort[T Ordered](in []T) []T {
	if len(in) <= 1 {
		return clone(in)
	}

	mid := len(in) / 2
	left := MergeSort(in[:mid])
	right := MergeSort(in[mid:])

	return mergeHalves(left, right)
}

// mergeHalves merges two sorted slices into a new sorted slice.
// Ties prefer the left slice to preserve stability.
func mergeHalves[T Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}

	// At most one of the two tails is non-empty here.
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
