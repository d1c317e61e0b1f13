// SPDX-License-Identifier: MIT
// Package: algoshelf/tree
//
// avl.go - height-balanced binary search tree.
//
// Invariants (after every Insert):
//   - search order: left < node < right under cmp
//   - |BalanceFactor| ≤ 1 at every node
//   - node.height caches 1 + max(child heights), nil = -1

package tree

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/core"
)

type avlNode[T any] struct {
	key         T
	height      int
	left, right *avlNode[T]
}

// AVL is a self-balancing binary search tree without duplicate keys.
type AVL[T any] struct {
	root *avlNode[T]
	cmp  core.Comparator[T]
	size int
}

// NewAVL returns an empty tree ordered by cmp. cmp must not be nil.
func NewAVL[T any](cmp core.Comparator[T]) *AVL[T] {
	if cmp == nil {
		panic("tree: NewAVL(nil comparator)")
	}

	return &AVL[T]{cmp: cmp}
}

func height[T any](n *avlNode[T]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func balanceFactor[T any](n *avlNode[T]) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

func (n *avlNode[T]) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateLeft lifts n.right above n and returns the new subtree root.
//
//	  n                r
//	 / \              / \
//	a   r     ⇒      n   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft[T any](n *avlNode[T]) *avlNode[T] {
	r := n.right
	n.right = r.left
	r.left = n
	n.fix()
	r.fix()

	return r
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[T any](n *avlNode[T]) *avlNode[T] {
	l := n.left
	n.left = l.right
	l.right = n
	n.fix()
	l.fix()

	return l
}

// rebalance restores the AVL property at n, whose children are balanced.
func rebalance[T any](n *avlNode[T]) *avlNode[T] {
	n.fix()
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 { // left-right
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 { // right-left
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// Insert adds key and reports whether it was new. An existing equal key
// leaves the tree unchanged.
//
// Complexity: O(log n).
func (t *AVL[T]) Insert(key T) bool {
	var added bool
	t.root, added = t.insert(t.root, key)
	if added {
		t.size++
	}

	return added
}

func (t *AVL[T]) insert(n *avlNode[T], key T) (*avlNode[T], bool) {
	if n == nil {
		return &avlNode[T]{key: key}, true
	}
	var added bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, added = t.insert(n.left, key)
	case c > 0:
		n.right, added = t.insert(n.right, key)
	default:
		return n, false
	}
	if !added {
		return n, false
	}

	return rebalance(n), true
}

// Contains reports whether a key comparing equal to key is stored.
func (t *AVL[T]) Contains(key T) bool {
	for cur := t.root; cur != nil; {
		switch c := t.cmp(key, cur.key); {
		case c == 0:
			return true
		case c > 0:
			cur = cur.right
		default:
			cur = cur.left
		}
	}

	return false
}

// Len returns the number of stored keys.
func (t *AVL[T]) Len() int { return t.size }

// Height returns the tree height in edges, -1 when empty. O(1).
func (t *AVL[T]) Height() int { return height(t.root) }

// BalanceFactor returns height(left) - height(right) at the root.
func (t *AVL[T]) BalanceFactor() int { return balanceFactor(t.root) }

// Root returns the key at the root.
func (t *AVL[T]) Root() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return t.root.key, true
}

// InOrder returns keys in ascending order.
func (t *AVL[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*avlNode[T])
	walk = func(n *avlNode[T]) {
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

// PreOrder returns keys node, left, right; it exposes the tree's shape.
func (t *AVL[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*avlNode[T])
	walk = func(n *avlNode[T]) {
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

// Check verifies search order, balance and cached heights at every node.
func (t *AVL[T]) Check() error {
	var check func(n *avlNode[T]) (int, error)
	check = func(n *avlNode[T]) (int, error) {
		if n == nil {
			return -1, nil
		}
		if n.left != nil && t.cmp(n.left.key, n.key) >= 0 {
			return 0, fmt.Errorf("%w: left %v ≥ %v", ErrOrderViolation, n.left.key, n.key)
		}
		if n.right != nil && t.cmp(n.right.key, n.key) <= 0 {
			return 0, fmt.Errorf("%w: right %v ≤ %v", ErrOrderViolation, n.right.key, n.key)
		}
		lh, err := check(n.left)
		if err != nil {
			return 0, err
		}
		rh, err := check(n.right)
		if err != nil {
			return 0, err
		}
		if h := 1 + max(lh, rh); h != n.height {
			return 0, fmt.Errorf("%w: %v cached %d, actual %d", ErrHeightMismatch, n.key, n.height, h)
		}
		if bf := lh - rh; bf > 1 || bf < -1 {
			return 0, fmt.Errorf("%w: %v has factor %d", ErrUnbalanced, n.key, bf)
		}

		return n.height, nil
	}
	_, err := check(t.root)
	if err != nil {
		return err
	}

	// Local parent/child checks miss grandchildren; the in-order walk does not.
	keys := t.InOrder()
	for i := 1; i < len(keys); i++ {
		if t.cmp(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("%w: %v before %v", ErrOrderViolation, keys[i-1], keys[i])
		}
	}

	return nil
}
