// SPDX-License-Identifier: MIT
// Package: algoshelf/sequence

package sequence

// NoDivergence is returned when two strings are identical.
const NoDivergence = -1

// DivergenceIndex returns the rune index at which a and b first differ.
//
// Rules, in order:
//   - identical strings ⇒ NoDivergence
//   - one string empty ⇒ 0
//   - first mismatching rune ⇒ its index
//   - one is a prefix of the other ⇒ length of the shorter
//
// Complexity: O(min(len(a), len(b))).
func DivergenceIndex(a, b string) int {
	if a == b {
		return NoDivergence
	}
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			return i
		}
	}

	return n
}

// DivergenceIndexRecursive computes DivergenceIndex with one recursive call
// per matching rune. Recursion depth is bounded by the shorter string.
func DivergenceIndexRecursive(a, b string) int {
	if a == b {
		return NoDivergence
	}

	return divergeFrom([]rune(a), []rune(b), 0)
}

func divergeFrom(a, b []rune, i int) int {
	if i >= len(a) || i >= len(b) || a[i] != b[i] {
		return i
	}

	return divergeFrom(a, b, i+1)
}
