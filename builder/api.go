package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gps/graph"
)

// Constructor adds one topology to b. Implementations validate parameters
// first, add their vertices through b.addVertices, emit edges in a stable
// documented order and never panic.
type Constructor func(b *Built, cfg config) error

// Built is a constructed graph and its edge weights.
type Built struct {
	Graph   graph.Graph
	Weights *Weights
}

// BuildGraph creates a graph per opts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(opts []Option, cons ...Constructor) (*Built, error) {
	cfg := newConfig(opts...)

	var g graph.Graph = graph.NewUndirected()
	if cfg.directed {
		g = graph.NewDirected()
	}
	b := &Built{Graph: g, Weights: &Weights{m: make(map[int]float64)}}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b, nil
}

// addVertices adds n vertices and returns their ids in creation order.
func (b *Built) addVertices(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = b.Graph.Add()
	}

	return vs
}

// addEdge adds u→v (or {u,v}) with a weight drawn from cfg.
func (b *Built) addEdge(method string, cfg config, u, v int) error {
	if _, err := b.Graph.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}
	w := cfg.weightFn(cfg.rng)
	b.Weights.m[graph.PairID(u, v)] = w
	if !b.Graph.Directed() {
		b.Weights.m[graph.PairID(v, u)] = w
	}

	return nil
}

// Weights maps each built edge orientation to its weight. It satisfies
// shortestpaths.Weigher.
type Weights struct {
	m map[int]float64
}

// Weight returns the weight of (u, v), or +Inf if no such edge was built.
func (w *Weights) Weight(u, v int) float64 {
	if x, ok := w.m[graph.PairID(u, v)]; ok {
		return x
	}

	return math.Inf(1)
}

// Set overrides the weight of (u, v); on undirected graphs (v, u) follows.
func (w *Weights) Set(g graph.Graph, u, v int, x float64) {
	w.m[graph.PairID(u, v)] = x
	if !g.Directed() {
		w.m[graph.PairID(v, u)] = x
	}
}
