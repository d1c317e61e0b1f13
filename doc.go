// SPDX-License-Identifier: MIT

// Package algoshelf is a shelf of classic algorithms and data structures,
// centred on a generic directed graph and its traversals.
//
// What is on the shelf?
//
//	core/       - Graph[T] and Node[T]: arena-backed directed multigraph keyed by payload
//	queue/      - FIFO Queue[T] with amortised O(1) Add/Remove
//	bfs/, dfs/  - forest traversals with hooks, sinks, depth limits;
//	              plus TopologicalSort and FindCycle
//	sink/       - where traversals emit visited payloads (collect, print, log)
//	builder/    - canonical shapes: path, cycle, star, complete, binary tree, G(n,p)
//	sorting/    - bubble, selection, merge, quick
//	search/     - linear and binary search, occurrence counting
//	sequence/   - longest common subsequence, divergence index, recursive sum
//	linkedlist/ - singly and doubly linked lists
//	tree/       - binary search tree and AVL tree
//
// The algoshelf command (cmd/algoshelf) runs every package from the shell.
//
// Guarantees:
//
//   - Determinism: traversals visit roots in registration order and
//     neighbours in insertion order, so equal inputs give equal outputs.
//   - Lookup misses are values, not errors: (zero, false) or -1.
//   - Graph methods are individually safe for concurrent use; traversals
//     work on a snapshot, so hooks may mutate the graph they walk.
package algoshelf
