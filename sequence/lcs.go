// SPDX-License-Identifier: MIT
// Package: algoshelf/sequence
//
// lcs.go - longest common subsequence by dynamic programming.
//
// Determinism:
//   - When several subsequences share the maximal length, backtracking
//     prefers dropping from b (moving left) unless the cell above is strictly
//     larger, so the same inputs always give the same answer.

package sequence

// LCS returns a longest common subsequence of a and b and its length in runes.
//
// Example: LCS("AGGTAB", "GXTXAYB") == ("GTAB", 4).
func LCS(a, b string) (string, int) {
	common := Common([]rune(a), []rune(b))

	return string(common), len(common)
}

// Common returns a longest common subsequence of a and b.
// The result is a fresh slice, empty (non-nil) when nothing is shared.
//
// Implementation:
//   - Stage 1: Fill table[i][j] = LCS length of a[:i] and b[:j], row by row.
//   - Stage 2: Walk back from table[len(a)][len(b)], collecting matches in
//     reverse, then flip them.
//
// Complexity: O(len(a)·len(b)) time and space.
func Common[E comparable](a, b []E) []E {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	out := make([]E, 0, table[len(a)][len(b)])
	for i, j := len(a), len(b); i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case table[i-1][j] > table[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}
