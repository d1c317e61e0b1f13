// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone compacts the arena: handles are renumbered, registration and
//     adjacency order are preserved.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of g sharing only the comparator and logger.
//
// Complexity: O(V + E)
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[T]{
		cmp:    g.cmp,
		logger: g.logger,
		nodes:  make([]*Node[T], 0, g.live),
		index:  make(map[T]Handle, g.live),
	}

	// Stage 1: copy live nodes, recording old→new handle remap.
	remap := make([]Handle, len(g.nodes))
	for i, n := range g.nodes {
		if n == nil {
			remap[i] = NoHandle
			continue
		}
		c := clone.addNodeLocked(n.Data)
		remap[i] = c.handle
	}

	// Stage 2: rewrite adjacency through the remap.
	for i, n := range g.nodes {
		if n == nil {
			continue
		}
		c := clone.nodes[remap[i]]
		c.adjacent = make([]Handle, len(n.adjacent))
		for j, h := range n.adjacent {
			c.adjacent[j] = remap[h]
		}
	}

	return clone
}

// Clear removes every node while keeping the comparator and logger.
// Nodes obtained before Clear report Removed() == true afterwards.
//
// Complexity: O(V).
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		if n != nil {
			n.adjacent = nil
		}
	}
	g.nodes = make([]*Node[T], 0)
	g.index = make(map[T]Handle)
	g.live = 0
}
