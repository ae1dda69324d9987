// Package labeled attaches vertex and edge labels to a graph.Graph.
//
// A Graph[VL, EL] wraps any graph.Graph and forwards every structural query
// to it, so it can be passed wherever a graph.Graph is expected (traversals,
// shortest paths). Labels live beside the structure:
//
//   - vertex labels keyed by vertex id
//   - edge labels keyed by the ordered identity graph.PairID(u, v)
//
// Edge labels are directional even over an undirected graph: on an
// undirected overlay the edge {u,v} may carry one label as (u, v) and another
// as (v, u). EdgeLabel reads exactly the orientation it is given.
//
// Vertex ids are recycled by the underlying graph, so Remove and RemoveEdge
// discard the labels they orphan; a reused id always starts unlabeled.
// Mutating the wrapped graph directly bypasses this bookkeeping.
package labeled
