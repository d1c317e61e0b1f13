// SPDX-License-Identifier: MIT

// Package tree provides ordered binary trees keyed by a three-way comparator.
//
//   - BST: plain binary search tree. Equal keys go to the left subtree, so
//     duplicates are kept. Height degrades to O(n) on sorted input.
//   - AVL: self-balancing search tree. Every insert restores
//     |height(left) - height(right)| ≤ 1 with at most two rotations.
//     Duplicate keys are rejected.
//
// Heights follow the edge convention: an empty tree has height -1 and a
// single node height 0.
//
// Traversals return fresh slices in in-order, pre-order or post-order.
// Neither type is safe for concurrent use.
package tree
