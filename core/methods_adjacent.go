// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Node adjacency APIs (AddAdjacent, RemoveAdjacent, Adjacent) and
//       the Graph.Neighbors query.
// Determinism:
//   - Adjacency is reported in insertion order, duplicates included.
// Concurrency:
//   - Node methods lock the owning graph's mu.

package core

import "fmt"

// Handle returns the node's arena index in its graph.
func (n *Node[T]) Handle() Handle { return n.handle }

// Removed reports whether the node is no longer a live member of its graph.
func (n *Node[T]) Removed() bool {
	g := n.owner
	if g == nil {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.liveLocked(n)
}

// AddAdjacent appends other to n's adjacency, creating a directed edge
// n→other. No uniqueness check is performed.
//
// Errors:
//   - ErrForeignNode: n or other is not a live node of the same graph.
//
// Complexity: O(1) amortized.
func (n *Node[T]) AddAdjacent(other *Node[T]) error {
	g := n.owner
	if g == nil || other == nil {
		return ErrForeignNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if other.owner != g || !g.liveLocked(n) || !g.liveLocked(other) {
		return fmt.Errorf("%w: %v→%v", ErrForeignNode, n.Data, other.Data)
	}
	n.adjacent = append(n.adjacent, other.handle)
	g.logger.Debug("edge added", "source", n.Data, "destination", other.Data)

	return nil
}

// RemoveAdjacent removes the first adjacency entry whose payload compares
// equal to data under the graph comparator, and returns that node.
// The boolean is false when nothing matched or n was removed.
//
// Only the first of several duplicates is removed.
// Complexity: O(deg(n)).
func (n *Node[T]) RemoveAdjacent(data T) (*Node[T], bool) {
	g := n.owner
	if g == nil {
		return nil, false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.liveLocked(n) {
		return nil, false
	}

	return g.removeAdjacentLocked(n, data)
}

// Adjacent returns the nodes n points at, in insertion order.
func (n *Node[T]) Adjacent() []*Node[T] {
	g := n.owner
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.liveLocked(n) {
		return nil
	}
	out := make([]*Node[T], 0, len(n.adjacent))
	for _, h := range n.adjacent {
		out = append(out, g.nodes[h])
	}

	return out
}

// Degree returns the number of outgoing adjacency entries, duplicates included.
func (n *Node[T]) Degree() int {
	g := n.owner
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(n.adjacent)
}

// liveLocked reports whether n occupies its arena slot; caller holds mu.
func (g *Graph[T]) liveLocked(n *Node[T]) bool {
	return int(n.handle) < len(g.nodes) && g.nodes[n.handle] == n
}

// Neighbors returns the payloads adjacent to data in insertion order.
//
// Errors:
//   - ErrNodeNotFound: data is not registered.
//
// Complexity: O(deg(data)).
func (g *Graph[T]) Neighbors(data T) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.index[data]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, data)
	}
	adj := g.nodes[h].adjacent
	out := make([]T, len(adj))
	for i, a := range adj {
		out[i] = g.nodes[a].Data
	}

	return out, nil
}
