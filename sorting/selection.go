// SPDX-License-Identifier: MIT
// Package: algoshelf/sorting

package sorting

import "cmp"

// Selection sorts s ascending in place and returns it.
func Selection[S ~[]E, E cmp.Ordered](s S) S {
	return SelectionFunc(s, cmp.Compare[E])
}

// SelectionFunc sorts s in place using compare and returns it.
//
// Complexity: Θ(n²) comparisons regardless of input, at most n-1 swaps.
func SelectionFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	for i := 0; i < len(s)-1; i++ {
		smallest := i
		for j := i + 1; j < len(s); j++ {
			if compare(s[j], s[smallest]) < 0 {
				smallest = j
			}
		}
		if smallest != i {
			s[i], s[smallest] = s[smallest], s[i]
		}
	}

	return s
}
