// SPDX-License-Identifier: MIT
// Package: algoshelf/tree
//
// bst.go - unbalanced binary search tree.

package tree

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

type bstNode[T any] struct {
	key         T
	left, right *bstNode[T]
}

// BST is an unbalanced binary search tree ordered by a comparator.
type BST[T any] struct {
	root *bstNode[T]
	cmp  core.Comparator[T]
	size int
}

// NewBST returns an empty tree ordered by cmp. cmp must not be nil.
func NewBST[T any](cmp core.Comparator[T]) *BST[T] {
	if cmp == nil {
		panic("tree: NewBST(nil comparator)")
	}

	return &BST[T]{cmp: cmp}
}

// Insert adds key. Keys comparing greater than a node go right, all others
// (equal keys included) go left.
//
// Complexity: O(h).
func (t *BST[T]) Insert(key T) {
	n := &bstNode[T]{key: key}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if t.cmp(key, cur.key) > 0 {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		} else {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		}
	}
}

// Search returns the stored key comparing equal to key.
func (t *BST[T]) Search(key T) (T, bool) {
	for cur := t.root; cur != nil; {
		switch c := t.cmp(key, cur.key); {
		case c == 0:
			return cur.key, true
		case c > 0:
			cur = cur.right
		default:
			cur = cur.left
		}
	}
	var zero T

	return zero, false
}

// Contains reports whether a key comparing equal to key is stored.
func (t *BST[T]) Contains(key T) bool {
	_, ok := t.Search(key)
	return ok
}

// Len returns the number of stored keys.
func (t *BST[T]) Len() int { return t.size }

// Height returns the number of edges on the longest root-to-leaf path,
// or -1 for an empty tree.
func (t *BST[T]) Height() int { return bstHeight(t.root) }

func bstHeight[T any](n *bstNode[T]) int {
	if n == nil {
		return -1
	}

	return 1 + max(bstHeight(n.left), bstHeight(n.right))
}

// InOrder returns keys left, node, right: ascending order.
func (t *BST[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PreOrder returns keys node, left, right.
func (t *BST[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		out = append(out, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PostOrder returns keys left, right, node.
func (t *BST[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.key)
	}
	walk(t.root)

	return out
}

// Check verifies the search order: every left descendant compares ≤ its
// ancestor and every right descendant compares >.
func (t *BST[T]) Check() error {
	var check func(n *bstNode[T], lo, hi *T) error
	check = func(n *bstNode[T], lo, hi *T) error {
		if n == nil {
			return nil
		}
		if lo != nil && t.cmp(n.key, *lo) <= 0 {
			return fmt.Errorf("%w: %v not > %v", ErrOrderViolation, n.key, *lo)
		}
		if hi != nil && t.cmp(n.key, *hi) > 0 {
			return fmt.Errorf("%w: %v not ≤ %v", ErrOrderViolation, n.key, *hi)
		}
		if err := check(n.left, lo, &n.key); err != nil {
			return err
		}

		return check(n.right, &n.key, hi)
	}

	return check(t.root, nil, nil)
}
