package labeled

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gps/graph"
)

var _ graph.Graph = (*Graph[string, string])(nil)

// Graph overlays labels of type VL on vertices and EL on edges.
type Graph[VL, EL any] struct {
	graph.Graph

	vertexLabels map[int]VL
	edgeLabels   map[int]EL
}

// New wraps g, which must not be nil.
func New[VL, EL any](g graph.Graph) *Graph[VL, EL] {
	return &Graph[VL, EL]{
		Graph:        g,
		vertexLabels: make(map[int]VL),
		edgeLabels:   make(map[int]EL),
	}
}

// AddLabeled adds a vertex carrying label and returns its id.
func (g *Graph[VL, EL]) AddLabeled(label VL) int {
	v := g.Graph.Add()
	g.vertexLabels[v] = label

	return v
}

// AddEdgeLabel adds edge (u, v) and labels the (u, v) orientation.
func (g *Graph[VL, EL]) AddEdgeLabel(u, v int, label EL) (int, error) {
	id, err := g.Graph.AddEdge(u, v)
	if err != nil {
		return 0, err
	}
	g.edgeLabels[graph.PairID(u, v)] = label

	return id, nil
}

// SetLabel labels the live vertex v.
func (g *Graph[VL, EL]) SetLabel(v int, label VL) error {
	if !g.Graph.Contains(v) {
		return fmt.Errorf("labeled: set label on %d: %w", v, graph.ErrVertexNotFound)
	}
	g.vertexLabels[v] = label

	return nil
}

// SetEdgeLabel labels the (u, v) orientation of an existing edge.
func (g *Graph[VL, EL]) SetEdgeLabel(u, v int, label EL) error {
	if !g.Graph.ContainsEdge(u, v) {
		return fmt.Errorf("labeled: no edge %d->%d: %w", u, v, ErrEdgeNotFound)
	}
	g.edgeLabels[graph.PairID(u, v)] = label

	return nil
}

// Label returns v's label, or the zero value and false.
func (g *Graph[VL, EL]) Label(v int) (VL, bool) {
	l, ok := g.vertexLabels[v]
	return l, ok
}

// EdgeLabel returns the label of the (u, v) orientation, or the zero value
// and false.
func (g *Graph[VL, EL]) EdgeLabel(u, v int) (EL, bool) {
	if u <= 0 || v <= 0 {
		var zero EL
		return zero, false
	}
	l, ok := g.edgeLabels[graph.PairID(u, v)]

	return l, ok
}

// Remove deletes v together with its label and the labels of its edges.
func (g *Graph[VL, EL]) Remove(v int) error {
	if !g.Graph.Contains(v) {
		return g.Graph.Remove(v)
	}

	nbrs := slices.AppendSeq(slices.Collect(g.Graph.Successors(v)), g.Graph.Predecessors(v))
	for _, w := range nbrs {
		delete(g.edgeLabels, graph.PairID(v, w))
		delete(g.edgeLabels, graph.PairID(w, v))
	}
	delete(g.vertexLabels, v)

	return g.Graph.Remove(v)
}

// RemoveEdge deletes one (u, v) edge. Its labels go once no (u, v) edge is
// left.
func (g *Graph[VL, EL]) RemoveEdge(u, v int) {
	g.Graph.RemoveEdge(u, v)
	if g.Graph.ContainsEdge(u, v) {
		return
	}
	delete(g.edgeLabels, graph.PairID(u, v))
	if !g.Graph.Directed() {
		delete(g.edgeLabels, graph.PairID(v, u))
	}
}
