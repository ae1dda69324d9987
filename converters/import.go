package converters

import (
	"cmp"
	"slices"

	gonum "gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/shortestpaths"
)

// Imported is a gps copy of a gonum graph together with its id mapping.
type Imported struct {
	// Graph is directed iff the source implemented gonum.Directed.
	Graph graph.Graph

	src   gonum.Graph
	ids   map[int64]int // gonum id → vertex
	nodes []int64       // vertex → gonum id; nodes[0] unused
}

var _ shortestpaths.Weigher = (*Imported)(nil)

// FromGonum copies src. Vertices are numbered 1..n in ascending gonum id
// order. Undirected edges are added once.
func FromGonum(src gonum.Graph) *Imported {
	ns := gonum.NodesOf(src.Nodes())
	ids := make([]int64, len(ns))
	for i, n := range ns {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	_, directed := src.(gonum.Directed)
	var g graph.Graph
	if directed {
		g = graph.NewDirected(graph.WithCapacity(len(ids)))
	} else {
		g = graph.NewUndirected(graph.WithCapacity(len(ids)))
	}

	im := &Imported{
		Graph: g,
		src:   src,
		ids:   make(map[int64]int, len(ids)),
		nodes: append([]int64{0}, ids...),
	}
	for _, id := range ids {
		im.ids[id] = g.Add()
	}

	for _, uid := range ids {
		to := gonum.NodesOf(src.From(uid))
		slices.SortFunc(to, func(a, b gonum.Node) int { return cmp.Compare(a.ID(), b.ID()) })
		for _, n := range to {
			vid := n.ID()
			if !directed && vid < uid {
				continue
			}
			// ids come from src itself, so both ends are live
			_, _ = g.AddEdge(im.ids[uid], im.ids[vid])
		}
	}

	return im
}

// Vertex returns the gps vertex for a gonum node id.
func (im *Imported) Vertex(id int64) (int, bool) {
	v, ok := im.ids[id]
	return v, ok
}

// NodeID returns the gonum node id of vertex v.
func (im *Imported) NodeID(v int) (int64, bool) {
	if v <= 0 || v >= len(im.nodes) {
		return 0, false
	}

	return im.nodes[v], true
}

// Weight reads the weight of (u, v) from the source graph. Unweighted
// sources give 1 for existing edges; absent edges give +Inf.
func (im *Imported) Weight(u, v int) float64 {
	x, ok1 := im.NodeID(u)
	y, ok2 := im.NodeID(v)
	if !ok1 || !ok2 {
		return shortestpaths.Inf
	}
	if wg, ok := im.src.(gonum.Weighted); ok {
		if w, ok := wg.Weight(x, y); ok {
			return w
		}
		return shortestpaths.Inf
	}
	if im.src.Edge(x, y) == nil {
		return shortestpaths.Inf
	}

	return 1
}
