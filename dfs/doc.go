// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Every registered node is emitted exactly
//     once, in pre-order, roots taken in registration order and neighbors
//     in adjacency insertion order. Supports:
//   - Pre-order and post-order hooks
//   - Injectable emission sink
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Single-source mode (WithStart)
//   - FindCycle / HasCycle: report one directed cycle using vertex
//     colouring (White, Gray, Black) and back-edge detection.
//   - TopologicalSort: linear ordering of a DAG, ErrCycleDetected otherwise.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, MaxDepth and typed hooks
//   - DFSResult: Order (pre-order), PostOrder, Depth, Parent, Roots
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V+E)
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  WithStart payload not in graph
//   - ErrOptionViolation      hook typed for another payload type
//   - ErrCycleDetected        cycle discovered in TopologicalSort
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS[T](g *core.Graph[T], opts ...Option) (*DFSResult[T], error)
//   - FindCycle[T](g *core.Graph[T]) ([]T, bool)
//   - HasCycle[T](g *core.Graph[T]) bool
//   - TopologicalSort[T](g *core.Graph[T], opts ...TopoOption) ([]T, error)
package dfs
