// Package spanning computes minimum spanning trees of undirected graphs.
//
// Two algorithms are provided:
//
//   - Kruskal sorts every edge by weight (stable, so ties keep graph.Edges
//     order) and joins components with a union-find. O(E log E).
//   - Prim grows one tree from a root. It is a best-first traversal.Traversal
//     over a traversal.IndexedPriority fringe keyed by the cheapest known
//     edge into each vertex. O(E log V).
//
// Compute dispatches on Options.Method. Weights come from a
// shortestpaths.Weigher; an edge of weight +Inf is treated as absent, so a
// graph connected only through such edges is reported as ErrDisconnected.
// Negative weights are allowed.
package spanning
