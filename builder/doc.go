// SPDX-License-Identifier: MIT

// Package builder produces canonical graph shapes for tests, demos and the CLI.
//
// A Constructor[T] mutates a *core.Graph[T] using an IDFn[T] that maps the
// zero-based vertex index to a payload. Build runs constructors in order;
// BuildGraph allocates the graph as well.
//
// Shapes:
//   - Path(n):          0→1→…→n-1
//   - Cycle(n):         Path plus n-1→0
//   - Star(n, bidir):   hub 0 → every leaf
//   - Complete(n):      every ordered pair i≠j
//   - BinaryTree(n):    heap layout, i → 2i+1, 2i+2
//   - RandomSparse(n,p): directed G(n,p), needs WithSeed or WithRand
//
// Vertices are registered in ascending index order before any edge is added,
// so the graph's registration order equals index order whenever the payloads
// were not registered earlier.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
