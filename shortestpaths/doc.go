// Package shortestpaths finds shortest paths in edge-weighted graphs by
// priority-ordered traversal, with optional A* guidance.
//
// What
//
//	A ShortestPaths value binds a graph.Graph, a source vertex, an optional
//	destination, a Weigher supplying edge weights, and a Store holding the
//	per-vertex best-known weight and predecessor. SetPaths runs the search;
//	Weight, Predecessor and PathTo read the results.
//
// How
//
//	SetPaths is a traversal.Traversal over an indexed min-heap fringe keyed by
//	Weight(v) + Heuristic(v), ties broken by vertex id. The fringe is seeded
//	with every live vertex (source at weight 0, the rest at +Inf). Removing a
//	vertex settles it; each successor whose weight improves through it gets
//	its weight and predecessor updated and its heap position fixed in
//	O(log V). A vertex that was already settled is reopened when it improves,
//	so admissible but inconsistent heuristics still yield correct results.
//	The search ends when the fringe is empty or when the destination is
//	removed with a predecessor assigned.
//
//	With the default zero heuristic this is Dijkstra's algorithm.
//
// Weights
//
//	Weigher.Weight(u, v) returns the weight of edge (u, v), or +Inf when the
//	edge should be treated as absent. Negative weights are rejected: SetPaths
//	stops at the first one it relaxes and returns ErrNegativeWeight.
//
// Unreachable vertices
//
//	Weight(v) stays +Inf and PathTo(v) returns the single-vertex path [v].
//	Use Reachable(v) to tell the two cases apart.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrWeigherNil, ErrStoreNil  from constructors
//   - ErrSourceNotFound                         source is not live at SetPaths
//   - ErrNegativeWeight                         a relaxed edge had weight < 0
package shortestpaths
