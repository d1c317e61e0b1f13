// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, single-source mode, emission sinks, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoshelf/sink"
)

// Visitation states of a vertex during cycle detection and topological sort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the WithStart payload
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an Option carries a hook typed
	// for a different payload type than the graph.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per discovered vertex.
	Ctx context.Context

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the roots. Default is -1 (no limit).
	MaxDepth int

	start    any // T
	hasStart bool
	onVisit  any // func(T, int) error, pre-order
	onExit   any // func(T) error, post-order
	filter   any // func(curr, neighbor T) bool
	sink     any // sink.Sink[T]
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Full traversal over every root (no WithStart)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithStart limits the traversal to the tree rooted at start.
func WithStart[T comparable](start T) Option {
	return func(o *DFSOptions) {
		o.start = start
		o.hasStart = true
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered, with its depth.
func WithOnVisit[T comparable](fn func(v T, depth int) error) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit[T comparable](fn func(v T) error) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// WithSink emits every discovered payload to s in pre-order.
func WithSink[T comparable](s sink.Sink[T]) Option {
	return func(o *DFSOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only roots are visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges.
// If fn(curr, neighbor) == false, that neighbor is not entered from curr and
// the skip is counted in DFSResult.SkippedNeighbors.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks is the typed view of DFSOptions for one payload type.
type hooks[T comparable] struct {
	start   T
	onVisit func(T, int) error
	onExit  func(T) error
	filter  func(T, T) bool
	sink    sink.Sink[T]
}

// resolve checks the untyped hooks against T. Nil hooks stay nil.
func resolve[T comparable](o *DFSOptions) (hooks[T], error) {
	h := hooks[T]{sink: sink.Discard[T]{}}
	var ok bool
	if o.hasStart {
		if h.start, ok = o.start.(T); !ok {
			return h, fmt.Errorf("%w: start %v is %T, graph holds %T", ErrOptionViolation, o.start, o.start, h.start)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(T, int) error); !ok {
			return h, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
		}
	}
	if o.onExit != nil {
		if h.onExit, ok = o.onExit.(func(T) error); !ok {
			return h, fmt.Errorf("%w: OnExit hook has type %T", ErrOptionViolation, o.onExit)
		}
	}
	if o.filter != nil {
		if h.filter, ok = o.filter.(func(T, T) bool); !ok {
			return h, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
	}
	if o.sink != nil {
		if h.sink, ok = o.sink.(sink.Sink[T]); !ok {
			return h, fmt.Errorf("%w: sink has type %T", ErrOptionViolation, o.sink)
		}
	}

	return h, nil
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[T comparable] struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []T

	// PostOrder records vertices in the sequence they finished.
	PostOrder []T

	// Depth maps each vertex to its distance (#edges) from its root.
	Depth map[T]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[T]T

	// Roots lists the start vertex of every DFS tree, in order.
	Roots []T

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
