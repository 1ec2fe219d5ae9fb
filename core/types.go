// Package core defines the index-based Graph type, its options and the
// sentinel errors shared by all graph operations.
//
// Errors:
//
//	ErrVertexNotFound - vertex index is out of range.
//	ErrLoopNotAllowed - self-loop requested through AddEdge.
//	ErrAdjacency      - SetAdjacency input is not a simple undirected graph.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; loops are never stored.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAdjacency indicates neighbor lists that are asymmetric, repeated or out of range.
	ErrAdjacency = errors.New("core: invalid adjacency")
)

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	capacity int // expected number of vertices
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is an undirected simple graph over the vertex range [0, VertexCount())
// with one value of type T per vertex.
//
// vals[i] is the value of vertex i; edges[i] is its neighbor set.
// Invariant: u ∈ edges[v] ⇔ v ∈ edges[u], and v ∉ edges[v].
type Graph[T any] struct {
	vals  []T
	edges []neighborSet
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(capacity).
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{
		vals:  make([]T, 0, o.capacity),
		edges: make([]neighborSet, 0, o.capacity),
	}
}

// mustVertex panics when v is not a vertex of g.
func (g *Graph[T]) mustVertex(op string, v int) {
	if v < 0 || v >= len(g.vals) {
		panic(fmt.Errorf("%s(%d): %w", op, v, ErrVertexNotFound))
	}
}

// String renders one line per vertex: "[value] v -> n1 n2 ...".
func (g *Graph[T]) String() string {
	var sb strings.Builder
	var i int
	for i = range g.vals {
		fmt.Fprintf(&sb, "[%v] %d ->", g.vals[i], i)
		for _, n := range g.edges[i].items {
			fmt.Fprintf(&sb, " %d", n)
		}
		if i != len(g.vals)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
