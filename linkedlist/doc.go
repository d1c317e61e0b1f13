// SPDX-License-Identifier: MIT

// Package linkedlist implements singly (List) and doubly (Doubly) linked
// lists over comparable payloads.
//
// Both keep head and tail pointers plus a length counter, so Append and Len
// are O(1). Delete and Search scan from the head and act on the first match.
// Lookup misses are reported as false or NotFound, never as errors.
//
// Neither type is safe for concurrent use.
package linkedlist

// NotFound is the index Search reports for a missing value.
const NotFound = -1
