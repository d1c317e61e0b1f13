// SPDX-License-Identifier: MIT
// Package: algoshelf/sorting

package sorting

import "cmp"

// Merge returns a sorted copy of s. s itself is left untouched.
func Merge[S ~[]E, E cmp.Ordered](s S) S {
	return MergeFunc(s, cmp.Compare[E])
}

// MergeFunc returns a sorted copy of s using compare. Equal elements keep
// their relative order.
//
// Implementation:
//   - Stage 1: Copy s into out and allocate one scratch buffer of len(s).
//   - Stage 2: Top-down split at len/2, sorting halves recursively.
//   - Stage 3: Merge halves through the scratch buffer, taking from the
//     left run on ties.
//
// Complexity: Θ(n log n) time, O(n) extra space.
func MergeFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	out := make(S, len(s))
	copy(out, s)
	if len(out) < 2 {
		return out
	}
	buf := make(S, len(out))
	mergeSort(out, buf, compare)

	return out
}

func mergeSort[S ~[]E, E any](s, buf S, compare func(a, b E) int) {
	if len(s) < 2 {
		return
	}
	mid := len(s) >> 1
	mergeSort(s[:mid], buf[:mid], compare)
	mergeSort(s[mid:], buf[mid:], compare)
	merge(s, mid, buf, compare)
}

// merge combines the sorted runs s[:mid] and s[mid:] back into s.
func merge[S ~[]E, E any](s S, mid int, buf S, compare func(a, b E) int) {
	copy(buf, s)
	left, right := buf[:mid], buf[mid:len(s)]
	li, ri, k := 0, 0, 0
	for li < len(left) && ri < len(right) {
		if compare(right[ri], left[li]) < 0 {
			s[k] = right[ri]
			ri++
		} else {
			s[k] = left[li]
			li++
		}
		k++
	}
	k += copy(s[k:], left[li:])
	copy(s[k:], right[ri:])
}
