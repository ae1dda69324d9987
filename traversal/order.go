package traversal

import "github.com/katalvlaran/gps/graph"

// PostOrder returns the depth-first finish order of every vertex reachable
// from roots. Successors are explored in adjacency order; a vertex appears
// after all of the vertices first discovered through it.
//
// Returns ErrGraphNil if g is nil.
func PostOrder(g graph.Graph, roots ...int) ([]int, error) {
	var order []int
	t, err := NewDepthFirst(g,
		WithShouldPostVisit(always),
		WithReverseSuccessors(always),
		WithPostVisit(func(v int) bool {
			order = append(order, v)
			return true
		}),
	)
	if err != nil {
		return nil, err
	}
	t.Traverse(roots...)

	return order, nil
}

// Reachable returns the vertices reachable from roots in ascending order.
func Reachable(g graph.Graph, roots ...int) ([]int, error) {
	t, err := NewBreadthFirst(g)
	if err != nil {
		return nil, err
	}
	t.Traverse(roots...)

	var out []int
	for v := range g.Vertices() {
		if t.Marked(v) {
			out = append(out, v)
		}
	}

	return out, nil
}
