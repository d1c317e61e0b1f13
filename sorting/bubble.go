// SPDX-License-Identifier: MIT
// Package: algoshelf/sorting

package sorting

import "cmp"

// Bubble sorts s ascending in place and returns it.
func Bubble[S ~[]E, E cmp.Ordered](s S) S {
	return BubbleFunc(s, cmp.Compare[E])
}

// BubbleFunc sorts s in place using compare and returns it.
// Each pass bubbles the largest remaining element to the end; a pass
// without swaps ends the sort.
//
// Complexity: O(n²) worst, O(n) on sorted input; O(1) extra space.
func BubbleFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			if compare(s[j], s[j+1]) > 0 {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return s
}
