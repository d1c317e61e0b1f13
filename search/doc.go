// SPDX-License-Identifier: MIT

// Package search provides linear and binary lookups returning an index or
// NotFound, plus Occurrences, a brute-force frequency count of candidates in
// a (typically random) sample drawn with Sample.
package search
