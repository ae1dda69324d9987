package gridgraph

import (
	"github.com/katalvlaran/gps/traversal"
)

// ConnectedComponents finds all contiguous islands of land cells under the
// grid's connectivity. Components are listed in row-major order of their
// first cell; each holds vertex ids in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *Grid) ConnectedComponents() [][]int {
	var (
		comps [][]int
		comp  []int
	)
	bft, _ := traversal.NewBreadthFirst(gg.graph,
		traversal.WithVisit(func(v int) bool {
			comp = append(comp, v)
			return true
		}),
		traversal.WithProcessSuccessor(func(_, v int, marked bool) bool {
			return !marked && gg.IsLand(v)
		}),
		traversal.WithLogger(gg.opts.Logger),
	)

	for v := range gg.graph.Vertices() {
		if !gg.IsLand(v) || bft.Marked(v) {
			continue
		}
		comp = nil
		bft.Traverse(v)
		comps = append(comps, comp)
	}

	return comps
}
