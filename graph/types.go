package graph

import (
	"errors"
	"iter"
)

// ErrVertexNotFound indicates an operation referenced a vertex id that is not live.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Edge is a single (From, To) pair yielded by Graph.Edges.
// For undirected graphs From <= To.
type Edge struct {
	From int
	To   int
}

// Graph is the read/write surface shared by Directed and Undirected.
//
// Vertex ids are positive; 0 is never a vertex and is returned by the indexed
// accessors to mean "none".
type Graph interface {
	// Directed reports whether edges are ordered pairs.
	Directed() bool

	// Add allocates the lowest available vertex id and returns it.
	Add() int
	// AddEdge adds an edge u→v (or {u,v}) and returns its identity.
	AddEdge(u, v int) (int, error)
	// Remove deletes v and every edge incident to it.
	Remove(v int) error
	// RemoveEdge deletes one (u, v) edge if present.
	RemoveEdge(u, v int)

	Contains(v int) bool
	ContainsEdge(u, v int) bool

	VertexSize() int
	EdgeSize() int
	MaxVertex() int

	OutDegree(v int) int
	InDegree(v int) int
	Successor(v, k int) int
	Predecessor(v, k int) int

	Successors(v int) iter.Seq[int]
	Predecessors(v int) iter.Seq[int]
	Vertices() iter.Seq[int]
	Edges() iter.Seq[Edge]

	// EdgeID returns the identity of (u, v) under this graph's directedness.
	EdgeID(u, v int) int
}

// Option configures a graph before creation.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Capacity pre-sizes the vertex arena. Zero means no hint.
	Capacity int
}

// DefaultOptions returns Options with no capacity hint.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// WithCapacity reserves room for n vertices. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
