// SPDX-License-Identifier: MIT
// Package: algoshelf/search
//
// search.go - index lookups over slices.
//
// Contract:
//   • A miss is not an error: every lookup returns NotFound (-1).
//   • Binary requires ascending input; on unsorted input the result is
//     unspecified but always NotFound or a valid index.

package search

import "cmp"

// NotFound is returned by lookups that do not find their target.
const NotFound = -1

// Linear returns the index of the first element equal to target.
//
// Complexity: O(n).
func Linear[S ~[]E, E comparable](s S, target E) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}

// Binary returns the index of an element equal to target in the ascending
// slice s. With duplicates, any matching index may be returned.
func Binary[S ~[]E, E cmp.Ordered](s S, target E) int {
	return BinaryFunc(s, target, cmp.Compare[E])
}

// BinaryFunc is Binary with a three-way comparator; s must be ascending
// under compare.
//
// Complexity: O(log n) time, O(1) space.
func BinaryFunc[S ~[]E, E any](s S, target E, compare func(a, b E) int) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := compare(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}
