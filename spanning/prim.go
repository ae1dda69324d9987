package spanning

import (
	"fmt"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/shortestpaths"
	"github.com/katalvlaran/gps/traversal"
)

// Prim returns a minimum spanning tree of g under w grown from
// Options.Root (the smallest live vertex when 0).
//
// Steps:
//  1. Validate g, w and the root.
//  2. Run a best-first traversal from the root over an IndexedPriority
//     keyed by best[v], the lightest edge seen from the tree to v.
//  3. Visiting v adds the edge (parent[v], v).
//  4. An unvisited successor whose edge beats best[v] takes it and is
//     repositioned in the fringe.
//
// Returns:
//   - the tree, edges in the order their far endpoint joined.
//   - the errors of Kruskal, plus a wrapped graph.ErrVertexNotFound for a
//     root that is not live.
//
// Complexity: O(E log V) time, O(V) memory beyond the graph.
func Prim(g graph.Graph, w shortestpaths.Weigher, opts ...Option) (Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return prim(g, w, o)
}

func prim(g graph.Graph, w shortestpaths.Weigher, o Options) (Tree, error) {
	if err := validate(g, w); err != nil {
		return Tree{}, err
	}

	root := o.Root
	if root == 0 {
		for v := range g.Vertices() {
			if root == 0 || v < root {
				root = v
			}
		}
	}
	if !g.Contains(root) {
		return Tree{}, fmt.Errorf("%w: root %d", graph.ErrVertexNotFound, root)
	}

	// best[v] is the lightest known edge from the tree to v, via parent[v].
	n := g.MaxVertex() + 1
	best := make([]float64, n)
	parent := make([]int, n)
	for i := range best {
		best[i] = shortestpaths.Inf
	}

	less := func(a, b int) bool {
		if best[a] != best[b] {
			return best[a] < best[b]
		}
		return a < b
	}

	t := Tree{Edges: make([]Edge, 0, g.VertexSize()-1)}
	trav, err := traversal.New(g, traversal.NewIndexedPriority(less),
		traversal.WithVisit(func(v int) bool {
			if parent[v] != 0 {
				t.add(o, parent[v], v, best[v])
			}
			return true
		}),
		traversal.WithProcessSuccessor(func(u, v int, marked bool) bool {
			if marked {
				return false
			}
			x := w.Weight(u, v)
			if !(x < best[v]) {
				return false
			}
			best[v], parent[v] = x, u
			return true
		}),
		traversal.WithLogger(o.Logger),
	)
	if err != nil {
		return Tree{}, err
	}
	trav.Traverse(root)

	if len(t.Edges) < g.VertexSize()-1 {
		return Tree{}, ErrDisconnected
	}

	return t, nil
}
