// Package mergesort provides a stable, out-of-place merge sort.
//
// Sorting is bottom-up: runs of width 1, 2, 4, ... are merged pairwise
// until a single run remains, so call depth stays constant regardless of
// input size. When the heads of two runs compare equal the left run wins,
// which keeps equal keys in input order.
package mergesort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Sort returns a new slice holding the values of in in non-decreasing
// order. in is not modified. An empty input yields an empty, non-nil slice.
func Sort[T constraints.Integer](in []T) []T {
	return SortFunc(in, cmp.Compare[T])
}

// SortFunc returns a stably sorted copy of in ordered by compare, which
// must return a negative value when a < b, zero when equal and a positive
// value when a > b.
func SortFunc[E any](in []E, compare func(a, b E) int) []E {
	n := len(in)
	src := make([]E, n)
	copy(src, in)
	if n < 2 {
		return src
	}

	dst := make([]E, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], compare)
		}
		src, dst = dst, src
	}

	return src
}

// merge interleaves the sorted runs left and right into dst, which must
// hold len(left)+len(right) elements.
func merge[E any](dst, left, right []E, compare func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
