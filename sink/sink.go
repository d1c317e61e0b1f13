// SPDX-License-Identifier: MIT
// Package sink defines the output side of traversals: every visited payload
// is emitted to a Sink, so callers decide whether results are collected,
// printed, or logged.
package sink

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

// Sink receives emitted items in order.
type Sink[T any] interface {
	Emit(v T)
}

// Func adapts a plain function to a Sink.
type Func[T any] func(v T)

// Emit calls f(v).
func (f Func[T]) Emit(v T) { f(v) }

// Discard drops every item.
type Discard[T any] struct{}

// Emit does nothing.
func (Discard[T]) Emit(T) {}

// Collector is an append-only, goroutine-safe in-memory Sink.
// The zero value is ready to use.
type Collector[T any] struct {
	mu    sync.Mutex
	items []T
}

// Emit appends v.
func (c *Collector[T]) Emit(v T) {
	c.mu.Lock()
	c.items = append(c.items, v)
	c.mu.Unlock()
}

// Items returns a copy of everything emitted so far.
func (c *Collector[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]T(nil), c.items...)
}

// Len returns the number of emitted items.
func (c *Collector[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Writer prints one item per line to an io.Writer using fmt's %v verb.
// The first write error is kept and later items are dropped.
type Writer[T any] struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer targeting w.
func NewWriter[T any](w io.Writer) *Writer[T] {
	return &Writer[T]{w: w}
}

// Emit writes v followed by a newline.
func (s *Writer[T]) Emit(v T) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, v)
}

// Err returns the first write error, if any.
func (s *Writer[T]) Err() error { return s.err }

// Log emits each item as an slog record.
type Log[T any] struct {
	logger *slog.Logger
	level  slog.Level
	msg    string
}

// NewLog returns a Sink logging every item under msg at level.
// A nil logger falls back to slog.Default().
func NewLog[T any](logger *slog.Logger, level slog.Level, msg string) *Log[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log[T]{logger: logger, level: level, msg: msg}
}

// Emit logs v under the "item" attribute.
func (s *Log[T]) Emit(v T) {
	s.logger.Log(context.Background(), s.level, s.msg, slog.Any("item", v))
}

// Tee fans every item out to all sinks, in argument order.
func Tee[T any](sinks ...Sink[T]) Sink[T] {
	return Func[T](func(v T) {
		for _, s := range sinks {
			s.Emit(v)
		}
	})
}
