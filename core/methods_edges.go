// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
//
// Edges are directed and stored as handles on the source node's adjacency.
// Neither self-loops nor parallel edges are rejected.

package core

// AddEdge appends a directed edge source→destination, registering either
// endpoint that does not exist yet. No reciprocal edge is added and
// duplicates accumulate.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(source, destination T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.addNodeLocked(source)
	dst := g.addNodeLocked(destination)
	src.adjacent = append(src.adjacent, dst.handle)
	g.logger.Debug("edge added", "source", source, "destination", destination)
}

// RemoveEdge removes the first source→destination entry from source's
// adjacency, matching destination with the graph comparator.
//
// It is a silent no-op when either endpoint is not registered. The result
// reports whether an entry was removed.
//
// Complexity: O(deg(source)).
func (g *Graph[T]) RemoveEdge(source, destination T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	sh, ok := g.index[source]
	if !ok {
		return false
	}
	if _, ok = g.index[destination]; !ok {
		return false
	}

	_, removed := g.removeAdjacentLocked(g.nodes[sh], destination)
	if removed {
		g.logger.Debug("edge removed", "source", source, "destination", destination)
	}

	return removed
}

// HasEdge reports whether source has at least one adjacency entry whose
// payload equals destination.
func (g *Graph[T]) HasEdge(source, destination T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sh, ok := g.index[source]
	if !ok {
		return false
	}
	dh, ok := g.index[destination]
	if !ok {
		return false
	}
	for _, h := range g.nodes[sh].adjacent {
		if h == dh {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of adjacency entries across all live nodes,
// counting duplicates.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		if n != nil {
			total += len(n.adjacent)
		}
	}

	return total
}

// removeAdjacentLocked removes the first entry of n's adjacency whose payload
// compares equal to data. Caller holds mu for writing.
func (g *Graph[T]) removeAdjacentLocked(n *Node[T], data T) (*Node[T], bool) {
	for i, h := range n.adjacent {
		m := g.nodes[h]
		if m == nil || g.cmp(m.Data, data) != 0 {
			continue
		}
		n.adjacent = append(n.adjacent[:i], n.adjacent[i+1:]...)

		return m, true
	}

	return nil, false
}
