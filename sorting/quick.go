package sorting

// QuickSort — functional quicksort with three-way partitioning.
//
// Description:
//
//	Picks the middle element as pivot, partitions the input into three
//	fresh groups (strictly less, equal, strictly greater), sorts the
//	outer groups recursively, and concatenates less + equal + greater.
//	Grouping all pivot duplicates into equal means they are placed once
//	and never recursed on, so all-equal input finishes in one pass.
//
// Algorithm Outline:
//  1. If len(in) <= 1, return a copy of in.
//  2. pivot = in[len(in)/2].
//  3. One scan splits in into less (< pivot), equal (== pivot),
//     greater (> pivot).
//  4. Return QuickSort(less) ++ equal ++ QuickSort(greater).
//
// Not stable by contract: the partition scheme may change, so callers
// must not rely on the relative order of equal elements.
//
// Complexity:
//
//	Time   = O(n log n) average, O(n²) for adversarial pivot runs
//	Memory = O(n) auxiliary per level
func QuickSort[T Ordered](in []T) []T {
	if len(in) <= 1 {
		return clone(in)
	}

	pivot := in[len(in)/2]
	var less, equal, greater []T
	for _, v := range in {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, len(in))
	out = append(out, QuickSort(less)...)
	out = append(out, equal...)
	out = append(out, QuickSort(greater)...)

	return out
}
