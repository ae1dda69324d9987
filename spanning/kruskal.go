package spanning

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/shortestpaths"
)

// Kruskal returns a minimum spanning tree of g under w.
//
// Steps:
//  1. Validate g and w.
//  2. Collect every edge once, skipping self-loops and +Inf weights.
//  3. Stable-sort by weight, so ties keep graph.Edges order.
//  4. Take each edge whose endpoints are in different union-find sets,
//     until |V|-1 edges are chosen.
//
// Returns:
//   - the tree, edges in the order chosen (U is the smaller id).
//   - ErrGraphNil, ErrWeigherNil, ErrNotUndirected.
//   - ErrDisconnected if fewer than |V|-1 edges join, or g is empty.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g graph.Graph, w shortestpaths.Weigher, opts ...Option) (Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return kruskal(g, w, o)
}

func kruskal(g graph.Graph, w shortestpaths.Weigher, o Options) (Tree, error) {
	if err := validate(g, w); err != nil {
		return Tree{}, err
	}

	var edges []Edge
	for e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		x := w.Weight(e.From, e.To)
		if math.IsInf(x, 1) {
			continue
		}
		edges = append(edges, Edge{U: e.From, V: e.To, Weight: x})
	}
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	uf := newUnionFind(g.MaxVertex() + 1)
	need := g.VertexSize() - 1
	t := Tree{Edges: make([]Edge, 0, need)}
	for _, e := range edges {
		if len(t.Edges) == need {
			break
		}
		if uf.union(e.U, e.V) {
			t.add(o, e.U, e.V, e.Weight)
		}
	}
	if len(t.Edges) < need {
		return Tree{}, ErrDisconnected
	}

	return t, nil
}

// unionFind is a disjoint-set forest with path halving and union by rank.
type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were disjoint.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}

	return true
}
