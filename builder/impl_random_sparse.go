// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   - n ≥ 1; p ∈ [0,1]; an RNG must be configured (WithSeed/WithRand).
//   - Every ordered pair (i,j), i ≠ j, is kept independently with probability p.
//   - Pairs are visited row-major, so one seed always yields the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor drawing a directed G(n,p) graph.
func RandomSparse[T comparable](n int, p float64) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T], cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		addNodes(g, ids, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && cfg.rng.Float64() < p {
					g.AddEdge(ids(i), ids(j))
				}
			}
		}

		return nil
	}
}
