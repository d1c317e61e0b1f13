// SPDX-License-Identifier: MIT
// Package: algoshelf/linkedlist

package linkedlist

import "iter"

type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list.
type List[T comparable] struct {
	head, tail *node[T]
	size       int
}

// New returns a list holding values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Append adds value at the tail.
func (l *List[T]) Append(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Delete unlinks the first node holding value and reports whether one was found.
func (l *List[T]) Delete(value T) bool {
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.value != value {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Search returns the zero-based position of the first value, or NotFound.
func (l *List[T]) Search(value T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == value {
			return i
		}
		i++
	}

	return NotFound
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// All yields values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns the elements head to tail in a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}
