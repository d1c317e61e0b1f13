// SPDX-License-Identifier: MIT
// Package queue provides a minimal generic FIFO buffer.
//
// Queue is the work list behind breadth-first traversal. Add and Remove are
// amortized O(1): removed slots are reclaimed by compacting the backing
// slice once the consumed prefix outgrows the live part.
//
// Remove and Peek on an empty queue return (zero, false) instead of failing.
// A Queue is not safe for concurrent use.
package queue

// compactMin is the consumed-prefix length below which compaction is skipped.
const compactMin = 32

// Queue is a first-in, first-out buffer. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// New returns an empty queue with room for capacity items.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Add appends v to the back of the queue.
func (q *Queue[T]) Add(v T) {
	q.items = append(q.items, v)
}

// Remove pops the front item. ok is false when the queue is empty.
func (q *Queue[T]) Remove() (v T, ok bool) {
	if q.head >= len(q.items) {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero // release reference for GC
	q.head++
	q.compact()

	return v, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head >= len(q.items) {
		return v, false
	}
	return q.items[q.head], true
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Clear drops every item, keeping the allocated capacity.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// compact shifts live items to the front once at least half the backing
// slice has been consumed.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head < compactMin || q.head*2 < len(q.items) {
		return
	}
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}
