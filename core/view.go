// SPDX-License-Identifier: MIT
// File: view.go
// Role: Read-only snapshots of a graph for traversal algorithms.
// Determinism:
//   - Order() follows registration order; Adjacent() follows insertion order.
// Concurrency:
//   - Snapshot taken under a single read lock; the View itself is immutable
//     and safe to share.

package core

// View is an immutable snapshot of a Graph's topology, addressed by Handle.
// Handles are the same as in the source graph at snapshot time.
type View[T comparable] struct {
	data  []T
	live  []bool
	adj   [][]Handle
	order []Handle
	index map[T]Handle
}

// View snapshots g. Later mutations of g are not reflected.
//
// Complexity: O(V + E) time and space.
func (g *Graph[T]) View() *View[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	v := &View[T]{
		data:  make([]T, n),
		live:  make([]bool, n),
		adj:   make([][]Handle, n),
		order: make([]Handle, 0, g.live),
		index: make(map[T]Handle, g.live),
	}
	for i, node := range g.nodes {
		if node == nil {
			continue
		}
		h := Handle(i)
		v.data[i] = node.Data
		v.live[i] = true
		v.adj[i] = append([]Handle(nil), node.adjacent...)
		v.order = append(v.order, h)
		v.index[node.Data] = h
	}

	return v
}

// Cap is one past the largest handle in the view; use it to size
// handle-indexed scratch slices.
func (v *View[T]) Cap() int { return len(v.data) }

// Len is the number of live nodes in the view.
func (v *View[T]) Len() int { return len(v.order) }

// Order returns live handles in registration order. Do not modify.
func (v *View[T]) Order() []Handle { return v.order }

// Data returns the payload stored at h. h must be live.
func (v *View[T]) Data(h Handle) T { return v.data[h] }

// Adjacent returns h's outgoing handles in insertion order. Do not modify.
func (v *View[T]) Adjacent(h Handle) []Handle { return v.adj[h] }

// Lookup resolves a payload to its handle.
func (v *View[T]) Lookup(data T) (Handle, bool) {
	h, ok := v.index[data]
	return h, ok
}

// Resolve maps a sequence of handles to their payloads.
func (v *View[T]) Resolve(hs []Handle) []T {
	out := make([]T, len(hs))
	for i, h := range hs {
		out[i] = v.data[h]
	}

	return out
}
