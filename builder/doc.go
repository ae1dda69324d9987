// Package builder generates deterministic graph fixtures on gps graphs.
//
// What:
//
//   - BuildGraph creates a graph.Directed or graph.Undirected and applies a
//     sequence of Constructors to it. Each Constructor adds its own fresh
//     vertices, so composing several yields their disjoint union.
//   - Every edge receives a weight from the configured weight function
//     (constant 1 by default). Weights are returned alongside the graph as
//     a shortestpaths.Weigher.
//
// Topologies:
//
//   - Path(n), Cycle(n), Star(n), Wheel(n)
//   - Complete(n), CompleteBipartite(n1, n2)
//   - Grid(rows, cols)
//   - RandomSparse(n, p)
//
// Determinism:
//
//	Same options, same seed and same constructor order produce identical
//	graphs, vertex ids and weights. Stochastic constructors and weight
//	functions draw from the RNG set by WithSeed or WithRand.
//
// Errors:
//
//   - ErrTooFewVertices:     a size parameter is below its minimum.
//   - ErrInvalidProbability: p is outside [0, 1].
//   - ErrNeedRandSource:     randomness was requested without an RNG.
//   - ErrConstructFailed:    a nil constructor was passed.
package builder
