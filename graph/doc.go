// Package graph provides a mutable, integer-indexed graph with directed and
// undirected flavors sharing one arena-backed implementation.
//
// Vertices are positive integers handed out by Add. Removed ids go back to a
// min-ordered pool and are reused, smallest first, before any new dense id is
// allocated, so numbering stays as compact as possible.
//
// What
//
//   - Directed:   successor lists plus inverse predecessor lists.
//   - Undirected: one symmetric adjacency list; Predecessors aliases Successors.
//   - Self-loops and parallel edges are permitted.
//   - Every edge has an integer identity computed by a pairing function
//     (PairID for ordered pairs, UnorderedPairID for unordered ones), so no
//     edge catalog is needed to name or deduplicate edges.
//
// Iteration
//
//	Successors, Predecessors, Vertices and Edges return iter.Seq values. Each
//	call yields an independent, lazily evaluated sequence; ranging over the
//	same value twice restarts it. Vertices re-checks liveness on every step,
//	so removing vertices while ranging over it is well defined (removed ids
//	are skipped). Adjacency sequences must not be ranged over while the graph
//	is being mutated.
//
// Complexity (d = degree of the vertex involved)
//
//   - Add:          O(log F) where F is the number of free ids
//   - AddEdge:      O(1) amortized
//   - Remove(v):    O(d·d')  (each neighbor list is filtered once per entry)
//   - RemoveEdge:   O(d)
//   - ContainsEdge: O(d)
//   - EdgeSize:     O(V + E)
//
// Errors
//
//   - ErrVertexNotFound  when AddEdge or Remove references a vertex that is not live.
//
// Concurrency
//
//	Graphs are not safe for concurrent use. There is no internal locking; a
//	single owner is expected to mutate and query the structure.
package graph
