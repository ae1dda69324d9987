// Package converters adapts graphs between gps and gonum.org/v1/gonum/graph.
//
// Directed and Undirected return read-only views that satisfy gonum's
// WeightedDirected and WeightedUndirected interfaces without copying, so
// gonum algorithms (path, traverse, topo, community, ...) run directly on a
// gps graph. Node ids are the gps vertex ids; edge weights come from a
// shortestpaths.Weigher, or are 1 when none is given. Following gonum's
// simple graphs, Weight reports 0 between a node and itself and +Inf for
// absent edges.
//
// FromGonum goes the other way: it copies any gonum graph into a fresh gps
// graph, assigning dense vertex ids in ascending gonum id order, and keeps
// the mapping plus a Weigher that reads the source graph's weights.
//
// Views observe later mutations of the underlying graph; they hold no state
// of their own. Parallel gps edges appear once.
package converters
