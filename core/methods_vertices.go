// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Keys() return live nodes in registration order.
//
// Concurrency:
//   - Registry and adjacency protected by mu.

package core

// AddNode returns the node registered for data, creating it if missing.
//
// Implementation:
//   - Stage 1: Under mu write lock, look the key up in the index.
//   - Stage 2: If present, return the existing node unchanged.
//   - Stage 3: Otherwise allocate a Node in the next arena slot and index it.
//
// Behavior highlights:
//   - Idempotent: repeated calls return the same *Node pointer.
//   - A key removed earlier is registered again at the end of the order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddNode(data T) *Node[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(data)
}

// addNodeLocked implements AddNode; caller holds mu for writing.
func (g *Graph[T]) addNodeLocked(data T) *Node[T] {
	if h, ok := g.index[data]; ok {
		return g.nodes[h]
	}

	n := &Node[T]{Data: data, handle: Handle(len(g.nodes)), owner: g}
	g.nodes = append(g.nodes, n)
	g.index[data] = n.handle
	g.live++
	g.logger.Debug("node registered", "data", data, "handle", int(n.handle))

	return n
}

// Node looks up the node registered for data.
// The boolean is false when no such node exists.
func (g *Graph[T]) Node(data T) (*Node[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.index[data]
	if !ok {
		return nil, false
	}

	return g.nodes[h], true
}

// HasNode reports whether data is registered.
func (g *Graph[T]) HasNode(data T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[data]

	return ok
}

// RemoveNode deletes the node for data and every adjacency entry pointing at it.
//
// Implementation:
//   - Stage 1: Under mu write lock, resolve data to a handle; absent ⇒ (nil, false).
//   - Stage 2: Filter the handle out of every live node's adjacency, the target included.
//   - Stage 3: Clear the arena slot, drop the key and detach the node from the graph.
//
// Behavior highlights:
//   - Purges all duplicate entries, so no dangling reference survives.
//   - The removed node keeps its Data but reports no adjacency afterwards.
//   - An absent key leaves the graph untouched.
//
// Complexity:
//   - Time O(V + E), Space O(1) extra.
func (g *Graph[T]) RemoveNode(data T) (*Node[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.index[data]
	if !ok {
		return nil, false
	}

	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		n.adjacent = dropHandle(n.adjacent, h)
	}

	target := g.nodes[h]
	g.nodes[h] = nil
	delete(g.index, data)
	g.live--
	target.adjacent = nil
	g.logger.Debug("node removed", "data", data, "handle", int(h))

	return target, true
}

// Len returns the number of live nodes.
func (g *Graph[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// Nodes returns live nodes in registration order.
// The slice is fresh; the nodes are shared with the graph.
func (g *Graph[T]) Nodes() []*Node[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node[T], 0, g.live)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// Keys returns the payloads of live nodes in registration order.
func (g *Graph[T]) Keys() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, 0, g.live)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n.Data)
		}
	}

	return out
}

// dropHandle filters every occurrence of h out of s in place.
func dropHandle(s []Handle, h Handle) []Handle {
	kept := s[:0]
	for _, x := range s {
		if x != h {
			kept = append(kept, x)
		}
	}
	clear(s[len(kept):])

	return kept
}
