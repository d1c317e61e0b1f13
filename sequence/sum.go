// SPDX-License-Identifier: MIT
// Package: algoshelf/sequence

package sequence

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds the elements of s recursively: head + Sum(tail).
// The empty slice sums to zero.
//
// Complexity: O(n) time, O(n) stack.
func Sum[S ~[]E, E Number](s S) E {
	if len(s) == 0 {
		return 0
	}

	return s[0] + Sum(s[1:])
}
