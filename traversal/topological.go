package traversal

import (
	"slices"

	"github.com/katalvlaran/gps/graph"
)

// AcyclicPostOrder is PostOrder for directed graphs that fails on the first
// back edge it meets, returning a *CycleError. Extra opts (a logger, say)
// are applied before the ordering hooks, which always win.
//
// A vertex is on the current path from its Visit until its PostVisit; an
// edge into such a vertex closes a cycle.
func AcyclicPostOrder(g graph.Graph, roots []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	var (
		order  []int
		onPath = make(map[int]bool)
		cycle  *CycleError
		t      *Traversal
	)
	hooks := append(slices.Clone(opts),
		WithShouldPostVisit(always),
		WithReverseSuccessors(always),
		WithVisit(func(v int) bool {
			onPath[v] = true
			return true
		}),
		WithPostVisit(func(v int) bool {
			delete(onPath, v)
			order = append(order, v)
			return true
		}),
		WithProcessSuccessor(func(u, v int, marked bool) bool {
			if cycle != nil {
				return false
			}
			if onPath[v] {
				cycle = &CycleError{From: u, Vertex: v}
				t.Stop()
				return false
			}
			return !marked
		}),
	)
	t, err := NewDepthFirst(g, hooks...)
	if err != nil {
		return nil, err
	}
	t.Traverse(roots...)

	if cycle != nil {
		return nil, cycle
	}

	return order, nil
}

// TopologicalSort orders every vertex of the directed graph g so that each
// edge u→v has u before v. Returns a *CycleError if g has a cycle.
func TopologicalSort(g graph.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// the stack pops the highest root first, so low ids finish last and lead
	order, err := AcyclicPostOrder(g, slices.Collect(g.Vertices()))
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)

	return order, nil
}
