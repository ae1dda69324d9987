// Package gps is a small in-memory graph toolkit built around dense integer
// vertex ids, a reusable traversal engine and priority-driven shortest paths.
//
// What is in the box:
//
//	graph/          Directed and Undirected graphs over recycled integer ids,
//	                 with pairing-function edge identities
//	traversal/      one fringe-driven walker for DFS, BFS and priority order,
//	                 steered by visit/post-visit/successor hooks
//	shortestpaths/  Dijkstra and A* as a traversal over an indexed heap,
//	                 with pluggable weights, heuristics and storage
//	spanning/       minimum spanning trees by Kruskal and by Prim
//	labeled/        vertex and edge labels layered over any graph
//	depends/        Makefile-style targets and build order with cycle checks
//	gridgraph/      2D grids as graphs: islands, A* across land, bridging
//	builder/        deterministic fixtures (paths, grids, random graphs)
//	converters/     gonum views of gps graphs and imports from gonum
//
// A typical flow builds a graph, optionally wraps it in labeled.Graph,
// then drives it with a traversal.Traversal for reachability and ordering
// or a shortestpaths.ShortestPaths for weighted routes.
//
// Tracing:
//
//	traversal, shortestpaths, spanning, depends and gridgraph accept a
//	*log.Logger (github.com/charmbracelet/log) through WithLogger and
//	emit debug events (visit, relax, settle) when one is set.
//
// Concurrency:
//
//	Nothing here is safe for concurrent mutation. Graphs may be read from
//	several goroutines while no one writes.
package gps
