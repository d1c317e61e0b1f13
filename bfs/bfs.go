// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, per-root depths, and parent links.
//
// Without WithStart the search sweeps every registered node in registration
// order and starts a fresh level-order walk from each one not yet visited, so
// disconnected components are all covered.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
	"github.com/katalvlaran/algoshelf/queue"
)

// queueItem pairs a handle with its BFS depth.
type queueItem struct {
	h     core.Handle
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	view    *core.View[T]
	opts    BFSOptions
	hooks   hooks[T]
	ctx     context.Context
	visited []bool // indexed by handle
	reached []bool // beyond MaxDepth but reachable from a walked tree
	cut     []core.Handle
	res     *BFSResult[T]
}

// BFS runs breadth-first search on g, applying any number of functional
// Options. Returns ErrGraphNil for a nil graph, ErrStartVertexNotFound when
// WithStart names a missing payload, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
//
// An empty graph yields an empty result and a nil error.
//
// With MaxDepth, nodes beyond the limit are left unvisited, and a node
// reachable from an earlier tree never starts a tree of its own, so the
// roots are the same with or without a limit.
func BFS[T comparable](g *core.Graph[T], opts ...Option) (*BFSResult[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolve[T](&o)
	if err != nil {
		return nil, err
	}

	view := g.View()
	n := view.Len()
	w := &walker[T]{
		view:    view,
		opts:    o,
		hooks:   h,
		ctx:     o.Ctx,
		visited: make([]bool, view.Cap()),
		reached: make([]bool, view.Cap()),
		res: &BFSResult[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	// Single-source mode
	if o.hasStart {
		root, ok := view.Lookup(h.start)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, h.start)
		}
		return w.res, w.walk(root)
	}

	// Forest mode: every unvisited node in registration order becomes a root
	for _, root := range view.Order() {
		if w.visited[root] || w.reached[root] {
			continue
		}
		if err = w.walk(root); err != nil {
			return w.res, err
		}
		w.markReachable()
	}

	return w.res, nil
}

// walk runs one level-order traversal from root with a fresh queue.
func (w *walker[T]) walk(root core.Handle) error {
	q := queue.New[queueItem](w.view.Len())
	w.res.Roots = append(w.res.Roots, w.view.Data(root))
	w.enqueue(q, root, 0, core.NoHandle)

	for !q.IsEmpty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, _ := q.Remove()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(q, item)
	}

	return nil
}

// enqueue marks h visited at depth d, records its parent, calls OnEnqueue,
// and adds it to q.
func (w *walker[T]) enqueue(q *queue.Queue[queueItem], h core.Handle, d int, parent core.Handle) {
	v := w.view.Data(h)
	w.visited[h] = true
	w.res.Depth[v] = d
	if parent != core.NoHandle {
		w.res.Parent[v] = w.view.Data(parent)
	}
	w.hooks.onEnqueue(v, d)
	q.Add(queueItem{h: h, depth: d})
}

// visit records the vertex in Order, emits it, and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	v := w.view.Data(item.h)
	w.res.Order = append(w.res.Order, v)
	w.hooks.sink.Emit(v)
	if err := w.hooks.onVisit(v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", v, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in adjacency order.
func (w *walker[T]) enqueueNeighbors(q *queue.Queue[queueItem], item queueItem) {
	cur := w.view.Data(item.h)
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		for _, nbr := range w.view.Adjacent(item.h) {
			if !w.visited[nbr] && w.hooks.filter(cur, w.view.Data(nbr)) {
				w.cut = append(w.cut, nbr)
			}
		}
		return
	}
	for _, nbr := range w.view.Adjacent(item.h) {
		if w.visited[nbr] {
			continue
		}
		if !w.hooks.filter(cur, w.view.Data(nbr)) {
			continue
		}
		w.enqueue(q, nbr, nextDepth, item.h)
	}
}

// markReachable flags every unvisited node reachable from the depth-limit
// frontier of the last tree, so forest mode does not use it as a root.
func (w *walker[T]) markReachable() {
	stack := w.cut
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[h] || w.reached[h] {
			continue
		}
		w.reached[h] = true
		cur := w.view.Data(h)
		for _, nbr := range w.view.Adjacent(h) {
			if !w.visited[nbr] && !w.reached[nbr] && w.hooks.filter(cur, w.view.Data(nbr)) {
				stack = append(stack, nbr)
			}
		}
	}
	w.cut = w.cut[:0]
}
