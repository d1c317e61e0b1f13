// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i → (i+1) mod n, emitted for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T], _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, ids, n)
		for i := 0; i < n; i++ {
			g.AddEdge(ids(i), ids((i+1)%n))
		}

		return nil
	}
}
