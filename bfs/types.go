// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoshelf/sink"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the WithStart payload is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for another
// payload type), it is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
// Typed hooks are stored untyped and checked against the graph's payload type
// when BFS runs.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth from each root.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	start     any // T
	hasStart  bool
	onEnqueue any // func(T, int)
	onVisit   any // func(T, int) error
	filter    any // func(curr, neighbor T) bool
	sink      any // sink.Sink[T]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - full traversal over every root (no WithStart)
//   - no hooks, no filtering, no sink.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart restricts the search to the component reachable from start
// instead of sweeping every registered root.
func WithStart[T comparable](start T) Option {
	return func(o *BFSOptions) {
		o.start = start
		o.hasStart = true
	}
}

// WithOnEnqueue registers a callback run when a vertex is enqueued.
// Receives the payload and its depth from the current root.
func WithOnEnqueue[T comparable](fn func(v T, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(v T, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithSink emits every visited payload to s, in visit order.
func WithSink[T comparable](s sink.Sink[T]) Option {
	return func(o *BFSOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks is the typed view of BFSOptions for one payload type.
type hooks[T comparable] struct {
	onEnqueue func(T, int)
	onVisit   func(T, int) error
	filter    func(T, T) bool
	sink      sink.Sink[T]
	start     T
}

// resolve checks the untyped hooks against T and fills defaults.
func resolve[T comparable](o *BFSOptions) (hooks[T], error) {
	h := hooks[T]{
		onEnqueue: func(T, int) {},
		onVisit:   func(T, int) error { return nil },
		filter:    func(T, T) bool { return true },
		sink:      sink.Discard[T]{},
	}
	var ok bool
	if o.hasStart {
		if h.start, ok = o.start.(T); !ok {
			return h, fmt.Errorf("%w: start %v is %T, graph holds %T", ErrOptionViolation, o.start, o.start, h.start)
		}
	}
	if o.onEnqueue != nil {
		if h.onEnqueue, ok = o.onEnqueue.(func(T, int)); !ok {
			return h, fmt.Errorf("%w: OnEnqueue hook has type %T", ErrOptionViolation, o.onEnqueue)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(T, int) error); !ok {
			return h, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
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

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence (root order, then level order).
//   - Depth: map from vertex to its distance (in edges) from its root.
//   - Parent: map from vertex to its predecessor in the BFS tree; roots are absent.
//   - Roots: the vertex each BFS tree started from, in order.
type BFSResult[T comparable] struct {
	Order  []T
	Depth  map[T]int
	Parent map[T]T
	Roots  []T
}

// PathTo reconstructs the path from dest's root to dest.
// Returns an error if dest was not reached.
func (r *BFSResult[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
