// SPDX-License-Identifier: MIT
// Package dfs implements cycle detection for directed core.Graphs using
// three-color marking and back-edge detection.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack, state slice, current path)
package dfs

import (
	"slices"

	"github.com/katalvlaran/algoshelf/core"
)

// cycleFinder holds the colour of every handle and the current DFS path.
type cycleFinder[T comparable] struct {
	view  *core.View[T]
	state []int
	path  []core.Handle
}

// HasCycle reports whether g contains a directed cycle. A nil graph is
// treated as cycle-free.
func HasCycle[T comparable](g *core.Graph[T]) bool {
	_, found := FindCycle(g)
	return found
}

// FindCycle returns the first directed cycle met while sweeping roots in
// registration order. The path starts and ends with the same vertex, e.g.
// [a b c a]; a self-loop yields [a a]. found is false for acyclic graphs.
func FindCycle[T comparable](g *core.Graph[T]) (cycle []T, found bool) {
	if g == nil {
		return nil, false
	}
	view := g.View()
	f := &cycleFinder[T]{
		view:  view,
		state: make([]int, view.Cap()),
		path:  make([]core.Handle, 0, view.Len()),
	}
	for _, h := range view.Order() {
		if f.state[h] != White {
			continue
		}
		if hs := f.visit(h); hs != nil {
			return view.Resolve(hs), true
		}
	}

	return nil, false
}

// visit returns the closed cycle as handles, or nil.
func (f *cycleFinder[T]) visit(h core.Handle) []core.Handle {
	f.state[h] = Gray
	f.path = append(f.path, h)

	for _, nbr := range f.view.Adjacent(h) {
		switch f.state[nbr] {
		case Gray:
			// back-edge: slice the path from nbr and close the loop
			start := slices.Index(f.path, nbr)
			cycle := append([]core.Handle(nil), f.path[start:]...)
			return append(cycle, nbr)
		case White:
			if cycle := f.visit(nbr); cycle != nil {
				return cycle
			}
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[h] = Black

	return nil
}
