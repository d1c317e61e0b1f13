// SPDX-License-Identifier: MIT

// Package sorting holds the textbook comparison sorts.
//
// Every algorithm has two forms: one over cmp.Ordered element types, and a
// ...Func form taking a three-way comparator (negative, zero, positive).
//
//	Algorithm  In place  Stable  Time (worst)   Extra space
//	Bubble     yes       yes     O(n²)          O(1)
//	Selection  yes       no      O(n²)          O(1)
//	Merge      no        yes     O(n log n)     O(n)
//	Quick      yes       no      O(n²)          O(log n)
//
// Bubble stops after the first pass without swaps, so sorted input costs O(n).
// Quick uses a Lomuto partition around the last element and recurses into
// the smaller side only, which bounds its stack depth by O(log n).
//
// Merge never modifies its input and always returns a fresh slice, even for
// zero or one elements.
package sorting
