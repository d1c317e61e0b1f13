// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(g, ids, bopts, cons...). Runs cons in order on g.
//   - Constructors are implemented in impl_*.go.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

// Constructor applies a graph mutation. Constructors validate their
// parameters before touching the graph, so a rejected call leaves g unchanged.
type Constructor[T comparable] func(g *core.Graph[T], ids IDFn[T], cfg builderConfig) error

// Build applies every constructor to g in order, resolving bopts once.
// The first constructor error is wrapped with "Build: %w" and returned;
// effects of earlier constructors are kept.
func Build[T comparable](g *core.Graph[T], ids IDFn[T], bopts []BuilderOption, cons ...Constructor[T]) error {
	if g == nil {
		return fmt.Errorf("Build: %w", core.ErrNilGraph)
	}
	if ids == nil {
		return fmt.Errorf("Build: nil IDFn: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, ids, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildGraph creates a graph with cmp and gopts, then runs Build on it.
func BuildGraph[T comparable](
	cmp core.Comparator[T],
	gopts []core.GraphOption,
	ids IDFn[T],
	bopts []BuilderOption,
	cons ...Constructor[T],
) (*core.Graph[T], error) {
	g := core.NewGraph(cmp, gopts...)
	if err := Build(g, ids, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// addNodes registers ids(0..n-1) in ascending index order.
func addNodes[T comparable](g *core.Graph[T], ids IDFn[T], n int) {
	for i := 0; i < n; i++ {
		g.AddNode(ids(i))
	}
}
