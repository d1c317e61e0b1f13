// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Node types, the Comparator used
// for adjacency lookups, and the NewGraph constructor.
//
// Nodes live in an arena owned by their Graph and are addressed by a stable
// Handle. Adjacency lists store handles, never owning pointers, so removing a
// node is a registry delete plus one filtering pass over every adjacency list.
//
// Errors:
//
//	ErrNilGraph     - graph pointer is nil.
//	ErrNodeNotFound - requested node does not exist.
//	ErrForeignNode  - node belongs to another graph or was removed.
package core

import (
	"errors"
	"log/slog"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrForeignNode indicates a node that is not a live member of the receiver's graph.
	ErrForeignNode = errors.New("core: node does not belong to this graph")
)

// Comparator is a three-way ordering function: negative when a < b,
// zero when a and b are equal, positive when a > b.
type Comparator[T any] func(a, b T) int

// Handle is the stable arena index of a Node inside its Graph.
// Handles are never reused, even after the node is removed.
type Handle int

// NoHandle marks the absence of a node (e.g. the parent of a traversal root).
const NoHandle Handle = -1

// Node is a labeled vertex holding a payload and its outgoing adjacency.
//
// Data doubles as the node's key inside the owning Graph and must not be
// modified after the node is registered.
type Node[T comparable] struct {
	// Data is the unique payload identifying this node.
	Data T

	handle   Handle    // arena slot
	adjacent []Handle  // outgoing edges in insertion order, duplicates allowed
	owner    *Graph[T] // owning graph, fixed at creation
}

// GraphOption configures a Graph before first use.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
	logger   *slog.Logger
}

// WithCapacity pre-sizes the node arena and key index.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger routes debug records for node and edge mutations to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is a registry mapping unique payload keys to Node instances.
//
// Storage uses Go key equality (==) on T; the Comparator is consulted only
// when removing entries from adjacency lists. Root iteration for traversals
// follows registration order.
//
// mu guards nodes, index and every node's adjacency. Each method is atomic on
// its own; sequences of calls need external synchronization.
type Graph[T comparable] struct {
	mu sync.RWMutex

	cmp    Comparator[T]
	logger *slog.Logger

	nodes []*Node[T]   // arena; nil slot = removed node
	index map[T]Handle // key → live handle
	live  int          // number of non-nil arena slots
}

// NewGraph creates an empty Graph using cmp for adjacency removal lookups.
// A nil cmp falls back to EqualComparator.
// Complexity: O(1) (O(capacity) with WithCapacity).
func NewGraph[T comparable](cmp Comparator[T], opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cmp == nil {
		cmp = EqualComparator[T]()
	}

	return &Graph[T]{
		cmp:    cmp,
		logger: cfg.logger,
		nodes:  make([]*Node[T], 0, cfg.capacity),
		index:  make(map[T]Handle, cfg.capacity),
	}
}

// EqualComparator returns a Comparator that reports 0 for == values and 1
// otherwise. It only supports equality lookups, not ordering.
func EqualComparator[T comparable]() Comparator[T] {
	return func(a, b T) int {
		if a == b {
			return 0
		}
		return 1
	}
}
