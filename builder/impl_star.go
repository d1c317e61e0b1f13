// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one hub (index 0) plus n-1 leaves.
//   - Edges hub → leaf for leaf=1..n-1. Pass Bidirectional to add leaf → hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub ids(0).
func Star[T comparable](n int, bidirectional bool) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T], _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(g, ids, n)
		hub := ids(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, ids(i))
			if bidirectional {
				g.AddEdge(ids(i), hub)
			}
		}

		return nil
	}
}
