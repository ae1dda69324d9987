package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gps/shortestpaths"
)

// Heuristic returns an admissible unit-step distance estimate to vertex to:
// Manhattan distance under Conn4, Chebyshev distance under Conn8.
func (gg *Grid) Heuristic(to int) shortestpaths.Heuristic {
	tx, ty, _ := gg.Cell(to)
	return func(v int) float64 {
		x, y, ok := gg.Cell(v)
		if !ok {
			return 0
		}
		dx, dy := abs(x-tx), abs(y-ty)
		if gg.opts.Conn == Conn8 {
			return float64(max(dx, dy))
		}
		return float64(dx + dy)
	}
}

// landStep costs 1 per move between land cells; water is impassable.
func (gg *Grid) landStep(_, v int) float64 {
	if !gg.IsLand(v) {
		return shortestpaths.Inf
	}

	return 1
}

// ShortestPath returns a fewest-steps route across land from vertex from to
// vertex to, inclusive, found by A*.
// Returns ErrNotLand for a water or out-of-range endpoint and ErrNoPath
// when the two cells are on different islands.
func (gg *Grid) ShortestPath(from, to int) ([]int, int, error) {
	if !gg.IsLand(from) || !gg.IsLand(to) {
		return nil, 0, fmt.Errorf("%w: %d->%d", ErrNotLand, from, to)
	}

	sp, err := shortestpaths.NewSimple(gg.graph, from, shortestpaths.WeightFunc(gg.landStep),
		shortestpaths.WithDest(to),
		shortestpaths.WithHeuristic(gg.Heuristic(to)),
		shortestpaths.WithLogger(gg.opts.Logger),
	)
	if err != nil {
		return nil, 0, err
	}
	if err := sp.SetPaths(); err != nil {
		return nil, 0, err
	}
	if !sp.Reachable(to) {
		return nil, 0, fmt.Errorf("%w: %d->%d", ErrNoPath, from, to)
	}

	return sp.PathTo(to), int(sp.Weight(to)), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
