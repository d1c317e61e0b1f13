// SPDX-License-Identifier: MIT

// Package sequence collects routines over strings and slices:
// longest common subsequence, divergence index and recursive sum.
//
// String routines work on runes, so indices count characters, not bytes.
package sequence
