// Package sorting - shared type constraint and copy helper.
package sorting

// Ordered enumerates the element types the sorts accept: any type whose
// underlying type is a built-in integer, float, or string. Ordering is
// the natural < of the element type.
//
// Float caveat: NaN compares false against everything, so slices
// containing NaN have no total order and the sorts make no promise
// about NaN placement.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// clone returns a fresh slice with the same contents as in.
// A nil or empty input yields an empty, non-nil slice, so callers can
// always index and append to the result without nil checks.
//
// Complexity: O(n) time, O(n) space.
func clone[T Ordered](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	return out
}
