// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via ids in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T], _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, ids, n)
		for i := 1; i < n; i++ {
			g.AddEdge(ids(i-1), ids(i))
		}

		return nil
	}
}
