// SPDX-License-Identifier: MIT
// Package: algoshelf/linkedlist

package linkedlist

import "iter"

type dnode[T comparable] struct {
	value      T
	prev, next *dnode[T]
}

// Doubly is a doubly linked list that can be walked in both directions.
// The zero value is an empty list.
type Doubly[T comparable] struct {
	head, tail *dnode[T]
	size       int
}

// NewDoubly returns a doubly linked list holding values in order.
func NewDoubly[T comparable](values ...T) *Doubly[T] {
	l := &Doubly[T]{}
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Append adds value at the tail.
func (l *Doubly[T]) Append(value T) {
	n := &dnode[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Delete unlinks the first node holding value, fixing both neighbours'
// links, and reports whether one was found.
func (l *Doubly[T]) Delete(value T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value != value {
			continue
		}
		if cur.prev == nil {
			l.head = cur.next
		} else {
			cur.prev.next = cur.next
		}
		if cur.next == nil {
			l.tail = cur.prev
		} else {
			cur.next.prev = cur.prev
		}
		cur.prev, cur.next = nil, nil
		l.size--

		return true
	}

	return false
}

// Search returns the zero-based position of the first value, or NotFound.
func (l *Doubly[T]) Search(value T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == value {
			return i
		}
		i++
	}

	return NotFound
}

// Neighbors returns the values around the first occurrence of value.
// hasPrev/hasNext are false at the ends; ok is false when value is absent.
func (l *Doubly[T]) Neighbors(value T) (prev, next T, hasPrev, hasNext, ok bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value != value {
			continue
		}
		if cur.prev != nil {
			prev, hasPrev = cur.prev.value, true
		}
		if cur.next != nil {
			next, hasNext = cur.next.value, true
		}

		return prev, next, hasPrev, hasNext, true
	}

	return prev, next, false, false, false
}

// Len returns the number of elements.
func (l *Doubly[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *Doubly[T]) IsEmpty() bool { return l.head == nil }

// All yields values from head to tail.
func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Backward yields values from tail to head through the prev links.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != nil; cur = cur.prev {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns the elements head to tail.
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// Reverse returns the elements tail to head. The list is not modified.
func (l *Doubly[T]) Reverse() []T {
	out := make([]T, 0, l.size)
	for v := range l.Backward() {
		out = append(out, v)
	}

	return out
}
