// Package gridgraph lays a rectangular 2D grid of integer cells out as a
// gps graph and runs grid-shaped searches over it.
//
// What:
//
//   - Grid wraps a [][]int with a land threshold: cells with value >=
//     LandThreshold are land, the rest water.
//   - Every cell is a vertex of an undirected graph.Undirected; neighbours
//     are joined according to Conn4 (N, E, S, W) or Conn8 (plus diagonals).
//     Cell (x, y) is vertex y*Width + x + 1.
//   - ConnectedComponents finds islands of land with a breadth-first
//     traversal restricted to land cells.
//   - ShortestPath runs A* across land with a Manhattan (Conn4) or
//     Chebyshev (Conn8) heuristic.
//   - ExpandIsland finds the fewest water cells to convert so two islands
//     touch, as a shortest-path search where entering water costs 1 and
//     entering land costs 0.
//
// Complexity (W×H cells, d = 4 or 8 neighbours):
//
//   - New:                 O(W×H×d)
//   - ConnectedComponents: O(W×H×d)
//   - ShortestPath:        O(W×H×d × log(W×H))
//   - ExpandIsland:        O(W×H×d × log(W×H))
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath:         no route between the requested cells or islands.
//   - ErrNotLand:        a ShortestPath endpoint is water or off the grid.
package gridgraph
