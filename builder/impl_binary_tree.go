// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// impl_binary_tree.go - implementation of BinaryTree(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Heap layout: index i has children 2i+1 and 2i+2 (when < n), left first.
//   - With IntIDs(1) this numbers the root 1 and gives node k children 2k, 2k+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

const (
	methodBinaryTree = "BinaryTree"
	minTreeNodes     = 1
)

// BinaryTree returns a Constructor for a complete binary tree on n nodes,
// edges pointing from parent to child.
func BinaryTree[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T], _ builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBinaryTree, n, minTreeNodes, ErrTooFewVertices)
		}
		addNodes(g, ids, n)
		for i := 0; i < n; i++ {
			for _, c := range [2]int{2*i + 1, 2*i + 2} {
				if c < n {
					g.AddEdge(ids(i), ids(c))
				}
			}
		}

		return nil
	}
}
