// SPDX-License-Identifier: MIT
// Package: algoshelf/tree

package tree

import "errors"

var (
	// ErrOrderViolation indicates a node whose key breaks the search order.
	ErrOrderViolation = errors.New("tree: search order violated")

	// ErrUnbalanced indicates an AVL node with |balance factor| > 1.
	ErrUnbalanced = errors.New("tree: node out of balance")

	// ErrHeightMismatch indicates a cached AVL height that disagrees with the
	// subtree it describes.
	ErrHeightMismatch = errors.New("tree: cached height is stale")
)
