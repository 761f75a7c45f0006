// Package sorting implements five classic comparison sorts as pure
// functions over ordered element types.
//
// 🚀 What is sorting?
//
//	A teaching-grade sorting library that favors clarity and testability
//	over raw speed.  Every sort returns a freshly allocated, sorted copy
//	and never touches its input.  It's useful for:
//	  • Comparing asymptotic behavior empirically (see package experiment)
//	  • Demonstrating classic algorithms with readable, verifiable code
//	  • Property-based testing of other sorting code against a reference
//
// ✨ Key features:
//   - BubbleSort    — adjacent swaps with early exit, O(n²), stable
//   - InsertionSort — sorted-prefix growth, O(n²), stable
//   - MergeSort     — halve, recurse, merge, O(n log n), stable
//   - QuickSort     — middle-pivot three-way partition, O(n log n) average
//   - StdSort       — the standard library's stable hybrid sort, O(n log n)
//
// All five share one contract:
//   - the input slice is never mutated;
//   - the result is a new slice sharing no memory with the input;
//   - nil and empty inputs yield an empty, non-nil slice.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortlab/sorting"
//
//	in := []int{5, 1, 3, 5, 2}
//	out := sorting.MergeSort(in)
//	// out = [1 2 3 5 5], in = [5 1 3 5 2]
//
// Element types are constrained by Ordered (integers, floats, strings);
// ordering is the natural < of the element type.
//
// Performance:
//
//   - BubbleSort/InsertionSort: O(n²) time worst/average, O(n) on sorted input
//   - MergeSort/StdSort:        O(n log n) time in all cases
//   - QuickSort:                O(n log n) average, O(n²) adversarial worst case
//   - All:                      O(n) auxiliary memory (the returned copy)
//
// See examples in example_test.go and benchmark scenarios in bench_test.go.
package sorting
