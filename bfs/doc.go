// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Visits every registered node exactly once. Roots are taken in
//     registration order; each unvisited root starts a queue-based walk.
//   - Within a walk, nodes are emitted in level order, neighbors in
//     adjacency insertion order. A node is marked visited when enqueued.
//   - Returns a BFSResult containing:
//   - Order: visit sequence across all roots
//   - Depth: payload → distance (edges) from its root
//   - Parent: payload → predecessor in its BFS tree
//   - Roots: the start of every BFS tree
//   - Emits each visited payload to an injectable sink.Sink (WithSink).
//
// Determinism
//
//	Registration order and adjacency insertion order fully determine the
//	visit sequence; no map iteration is involved.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (graph snapshot, queue, Depth and Parent maps)
//
// Usage
//
//	res, err := bfs.BFS(g)
//	res, err := bfs.BFS(g,
//	    bfs.WithStart(1),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithSink[int](&collector),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per dequeue.
//   - WithStart(v):             single-source mode from v.
//   - WithMaxDepth(d):          stop expanding beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn):   skip edges for which fn(curr, nbr) == false.
//   - WithOnEnqueue(fn):        hook when a node is enqueued.
//   - WithOnVisit(fn):          hook when visiting; returning error aborts BFS.
//   - WithSink(s):              emit every visited payload to s.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the WithStart payload is not registered.
//   - ErrOptionViolation      for invalid options or hooks typed for another payload.
//   - context errors          on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
