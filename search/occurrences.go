// SPDX-License-Identifier: MIT
// Package: algoshelf/search

package search

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrEmptyPopulation is returned by Sample when there is nothing to draw from.
	ErrEmptyPopulation = errors.New("search: empty population")

	// ErrNilRand is returned by Sample when no random source is given.
	ErrNilRand = errors.New("search: nil random source")
)

// Count pairs a candidate with the number of times it occurs in a sample.
type Count[E comparable] struct {
	Value E
	Count int
}

// String renders c as "value: count occ".
func (c Count[E]) String() string {
	return fmt.Sprintf("%v: %d occ", c.Value, c.Count)
}

// Occurrences counts, for every distinct candidate, how many elements of
// sample equal it, scanning the sample linearly once per candidate.
// Results follow the first appearance of each candidate; candidates absent
// from the sample are reported with Count 0.
//
// Complexity: O(len(candidates) · len(sample)).
func Occurrences[E comparable](candidates, sample []E) []Count[E] {
	out := make([]Count[E], 0, len(candidates))
	seen := make(map[E]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		n := 0
		for _, s := range sample {
			if s == c {
				n++
			}
		}
		out = append(out, Count[E]{Value: c, Count: n})
	}

	return out
}

// Sample draws n elements from population uniformly with replacement.
// n ≤ 0 yields an empty sample. r must be non-nil.
func Sample[E any](r *rand.Rand, population []E, n int) ([]E, error) {
	if r == nil {
		return nil, ErrNilRand
	}
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	if n < 0 {
		n = 0
	}
	out := make([]E, n)
	for i := range out {
		out[i] = population[r.Intn(len(population))]
	}

	return out, nil
}
