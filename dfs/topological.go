// SPDX-License-Identifier: MIT
// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v in the ordering.
// If the graph contains a cycle (self-loops included), ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoshelf/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T comparable] struct {
	view  *core.View[T] // snapshot being sorted
	opts  topoOptions   // traversal options (cancellation)
	state []int         // visitation state per handle: White, Gray, Black
	order []core.Handle // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are explored in registration order and neighbors in insertion
// order, so the result is deterministic.
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns an error
// wrapping ErrCycleDetected.
func TopologicalSort[T comparable](g *core.Graph[T], options ...TopoOption) ([]T, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	view := g.View()
	sorter := &topoSorter[T]{
		view:  view,
		opts:  opts,
		state: make([]int, view.Cap()), // all vertices start as White (0)
		order: make([]core.Handle, 0, view.Len()),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, h := range view.Order() {
		if sorter.state[h] == White {
			if err := sorter.visit(h); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return view.Resolve(sorter.order), nil
}

// visit performs a DFS from h, marking states and detecting cycles.
func (t *topoSorter[T]) visit(h core.Handle) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Mark as in-progress (Gray)
	t.state[h] = Gray

	// 3. Explore each outgoing edge
	for _, nbr := range t.view.Adjacent(h) {
		switch t.state[nbr] {
		case Gray:
			// back-edge onto the current path
			return fmt.Errorf("%w: edge %v→%v", ErrCycleDetected, t.view.Data(h), t.view.Data(nbr))
		case White:
			if err := t.visit(nbr); err != nil {
				return err
			}
		}
	}

	// 4. Mark as fully explored (Black) and record in post-order
	t.state[h] = Black
	t.order = append(t.order, h)

	return nil
}
