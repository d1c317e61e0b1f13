// SPDX-License-Identifier: MIT
// Package: algoshelf/sorting

package sorting

import "cmp"

// Quick sorts s ascending in place and returns it.
func Quick[S ~[]E, E cmp.Ordered](s S) S {
	return QuickFunc(s, cmp.Compare[E])
}

// QuickFunc sorts s in place using compare and returns it.
//
// Complexity: O(n log n) expected, O(n²) when every pivot is an extreme
// (e.g. already sorted input). Stack depth O(log n).
func QuickFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi, compare)
		// Recurse into the smaller side, loop on the larger one.
		if p-lo < hi-p {
			QuickFunc(s[lo:p], compare)
			lo = p + 1
		} else {
			QuickFunc(s[p+1:hi+1], compare)
			hi = p - 1
		}
	}

	return s
}

// partition places s[hi] at its final index within s[lo:hi+1] and returns
// that index; smaller elements end up on its left.
func partition[S ~[]E, E any](s S, lo, hi int, compare func(a, b E) int) int {
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if compare(s[j], pivot) < 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}
