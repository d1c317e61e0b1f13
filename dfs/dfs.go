// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, opts...): pre-order traversal of every tree, roots in registration order
//   - Explicit stack: no recursion, so deep chains cannot exhaust the goroutine stack
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V + E) for the graph snapshot, O(V) for the stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	h     core.Handle
	next  int // index of the next adjacency entry to examine
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[T comparable] struct {
	view    *core.View[T]
	opts    DFSOptions
	hooks   hooks[T]
	visited []bool // indexed by handle
	reached []bool // beyond MaxDepth but reachable from a walked tree
	cut     []core.Handle
	stack   []frame
	res     *DFSResult[T]
}

// DFS performs depth-first search on graph g. By default it covers every
// registered node, starting a new tree from each unvisited node in
// registration order; WithStart restricts it to a single tree.
//
// With MaxDepth, nodes below the limit are left unvisited, and a node
// reachable from an earlier tree never starts a tree of its own, so the
// roots are the same with or without a limit.
// Returns the DFSResult, or an error if aborted by context or hook; the
// partial result is returned alongside hook and context errors.
func DFS[T comparable](g *core.Graph[T], opts ...Option) (*DFSResult[T], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	h, err := resolve[T](&dopts)
	if err != nil {
		return nil, err
	}

	// 3. Snapshot and initialize result with capacity hint
	view := g.View()
	n := view.Len()
	walker := &dfsWalker[T]{
		view:    view,
		opts:    dopts,
		hooks:   h,
		visited: make([]bool, view.Cap()),
		reached: make([]bool, view.Cap()),
		res: &DFSResult[T]{
			Order:     make([]T, 0, n),
			PostOrder: make([]T, 0, n),
			Depth:     make(map[T]int, n),
			Parent:    make(map[T]T, n),
		},
	}

	// 4. Single-source mode: verify start
	if dopts.hasStart {
		root, ok := view.Lookup(h.start)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, h.start)
		}
		return walker.res, walker.traverse(root)
	}

	// 5. Forest mode
	for _, root := range view.Order() {
		if walker.visited[root] || walker.reached[root] {
			continue
		}
		if err = walker.traverse(root); err != nil {
			return walker.res, err
		}
		walker.markReachable()
	}

	return walker.res, nil
}

// traverse runs one pre-order walk from root using the explicit stack.
// The visit order matches the recursive formulation exactly: a neighbor's
// visited flag is checked only when the walk reaches it in adjacency order.
func (w *dfsWalker[T]) traverse(root core.Handle) error {
	w.res.Roots = append(w.res.Roots, w.view.Data(root))
	if err := w.enter(root, 0, core.NoHandle); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		child, ok := w.nextChild(top)
		if ok {
			if err := w.enter(child, top.depth+1, top.h); err != nil {
				return err
			}
			continue
		}

		// all neighbors explored: pop and finish
		done := *top
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.exit(done.h); err != nil {
			return err
		}
	}

	return nil
}

// nextChild advances f to the next unvisited, unfiltered neighbor.
func (w *dfsWalker[T]) nextChild(f *frame) (core.Handle, bool) {
	// Depth limit: do not descend below MaxDepth, but remember the frontier
	if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
		for _, nbr := range w.view.Adjacent(f.h) {
			if !w.visited[nbr] && w.follows(f.h, nbr) {
				w.cut = append(w.cut, nbr)
			}
		}
		return core.NoHandle, false
	}

	adj := w.view.Adjacent(f.h)
	for f.next < len(adj) {
		nbr := adj[f.next]
		f.next++
		if w.visited[nbr] {
			continue
		}
		if w.hooks.filter != nil && !w.hooks.filter(w.view.Data(f.h), w.view.Data(nbr)) {
			w.res.SkippedNeighbors++
			continue
		}
		return nbr, true
	}

	return core.NoHandle, false
}

// enter discovers h: cancellation check, mark visited, record, emit,
// pre-order hook, then push its frame.
func (w *dfsWalker[T]) enter(h core.Handle, depth int, parent core.Handle) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth/parent
	v := w.view.Data(h)
	w.visited[h] = true
	w.res.Depth[v] = depth
	if parent != core.NoHandle {
		w.res.Parent[v] = w.view.Data(parent)
	}

	// 3. Emit in pre-order
	w.res.Order = append(w.res.Order, v)
	w.hooks.sink.Emit(v)

	// 4. Pre-order hook
	if w.hooks.onVisit != nil {
		if err := w.hooks.onVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	w.stack = append(w.stack, frame{h: h, depth: depth})

	return nil
}

// exit runs the post-order hook and records finish order.
func (w *dfsWalker[T]) exit(h core.Handle) error {
	v := w.view.Data(h)
	if w.hooks.onExit != nil {
		if err := w.hooks.onExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}

// follows reports whether the edge from→to passes FilterNeighbor.
func (w *dfsWalker[T]) follows(from, to core.Handle) bool {
	return w.hooks.filter == nil || w.hooks.filter(w.view.Data(from), w.view.Data(to))
}

// markReachable flags every unvisited node reachable from the depth-limit
// frontier of the last tree, so forest mode does not use it as a root.
func (w *dfsWalker[T]) markReachable() {
	stack := w.cut
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[h] || w.reached[h] {
			continue
		}
		w.reached[h] = true
		for _, nbr := range w.view.Adjacent(h) {
			if !w.visited[nbr] && !w.reached[nbr] && w.follows(h, nbr) {
				stack = append(stack, nbr)
			}
		}
	}
	w.cut = w.cut[:0]
}
