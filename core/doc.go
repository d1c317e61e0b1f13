// SPDX-License-Identifier: MIT
// Package core provides the generic in-memory Graph used by every traversal
// in this module.
//
// A Graph[T] maps unique payloads of a comparable type T to Node[T] values.
// Nodes live in an arena and are addressed by a stable Handle; adjacency lists
// store handles, so removing a node never leaves an owning pointer behind.
//
//   - Directed edges only; AddEdge(a, b) records a→b.
//   - Parallel edges and self-loops are accepted as-is.
//   - Registration order is remembered and drives root selection in bfs/dfs.
//   - Storage uses Go == on T; a caller-supplied Comparator[T] decides which
//     adjacency entry RemoveAdjacent / RemoveEdge drop.
//
// Lookup misses never fail loudly: RemoveNode and RemoveAdjacent return
// (nil, false), RemoveEdge returns false, Node returns (nil, false).
//
// Core Methods:
//
//	NewGraph[T](cmp Comparator[T], opts ...GraphOption) *Graph[T]
//
//	// Node lifecycle
//	AddNode(data T) *Node[T]               // O(1), idempotent
//	Node(data T) (*Node[T], bool)          // O(1)
//	HasNode(data T) bool                   // O(1)
//	RemoveNode(data T) (*Node[T], bool)    // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(source, destination T)         // O(1)
//	RemoveEdge(source, destination T) bool // O(deg)
//	HasEdge(source, destination T) bool    // O(deg)
//
//	// Node adjacency
//	(*Node).AddAdjacent(other *Node[T]) error
//	(*Node).RemoveAdjacent(data T) (*Node[T], bool)
//
//	// Queries & snapshots
//	Len, EdgeCount, Nodes, Keys, Neighbors, View, Clone, Clear
//
// Concurrency:
//
// A single sync.RWMutex makes each call atomic. The structure is still meant
// for single-threaded use: callers that interleave several calls from
// different goroutines must hold their own lock around the sequence.
// Traversal packages work on a View so hooks may freely mutate the graph.
package core
