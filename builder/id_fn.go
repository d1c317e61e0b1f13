// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// id_fn.go - deterministic index → payload schemes for constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to the payload stored in the graph.
// It must be pure, and distinct indices must yield distinct payloads.
type IDFn[T comparable] func(idx int) T

// IntIDs returns the scheme idx → idx+offset. IntIDs(1) numbers vertices from 1.
func IntIDs(offset int) IDFn[int] {
	return func(idx int) int { return idx + offset }
}

// DecimalIDs maps idx to its decimal string, e.g. 0→"0", 42→"42".
func DecimalIDs(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedIDs returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixedIDs(prefix string) IDFn[string] {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ExcelColumnIDs returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDs(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDs: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
