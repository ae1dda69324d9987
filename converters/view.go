package converters

import (
	"iter"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/shortestpaths"
)

var (
	_ gonum.WeightedDirected   = (*DirectedView)(nil)
	_ gonum.WeightedUndirected = (*UndirectedView)(nil)
)

// view holds what both orientations share.
type view struct {
	g graph.Graph
	w shortestpaths.Weigher
}

// Node returns the node with the given id if it is live.
func (v view) Node(id int64) gonum.Node {
	if !v.g.Contains(int(id)) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns every live vertex in ascending id order.
func (v view) Nodes() gonum.Nodes { return nodes(v.g.Vertices()) }

func (v view) weight(x, y int) float64 {
	if v.w == nil {
		return 1
	}

	return v.w.Weight(x, y)
}

func (v view) edge(x, y int) gonum.WeightedEdge {
	return simple.WeightedEdge{F: simple.Node(x), T: simple.Node(y), W: v.weight(x, y)}
}

// nodes builds a gonum iterator over the distinct ids of seqs, sorted.
func nodes(seqs ...iter.Seq[int]) gonum.Nodes {
	var ids []int
	for _, s := range seqs {
		ids = slices.AppendSeq(ids, s)
	}
	if len(ids) == 0 {
		return gonum.Empty
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	ns := make([]gonum.Node, len(ids))
	for i, id := range ids {
		ns[i] = simple.Node(id)
	}

	return iterator.NewOrderedNodes(ns)
}

// DirectedView presents a gps graph as a gonum.WeightedDirected.
// Over an undirected gps graph every edge appears in both directions.
type DirectedView struct{ view }

// Directed returns a directed view of g weighted by w (nil means 1).
func Directed(g graph.Graph, w shortestpaths.Weigher) *DirectedView {
	return &DirectedView{view{g: g, w: w}}
}

// From returns the successors of id.
func (d *DirectedView) From(id int64) gonum.Nodes {
	if !d.g.Contains(int(id)) {
		return gonum.Empty
	}

	return nodes(d.g.Successors(int(id)))
}

// To returns the predecessors of id.
func (d *DirectedView) To(id int64) gonum.Nodes {
	if !d.g.Contains(int(id)) {
		return gonum.Empty
	}

	return nodes(d.g.Predecessors(int(id)))
}

func (d *DirectedView) HasEdgeBetween(xid, yid int64) bool {
	x, y := int(xid), int(yid)
	return d.g.ContainsEdge(x, y) || d.g.ContainsEdge(y, x)
}

func (d *DirectedView) HasEdgeFromTo(uid, vid int64) bool {
	return d.g.ContainsEdge(int(uid), int(vid))
}

// Edge returns the u→v edge, or nil.
func (d *DirectedView) Edge(uid, vid int64) gonum.Edge {
	if e := d.WeightedEdge(uid, vid); e != nil {
		return e
	}

	return nil
}

// WeightedEdge returns the u→v edge with its weight, or nil.
func (d *DirectedView) WeightedEdge(uid, vid int64) gonum.WeightedEdge {
	if !d.HasEdgeFromTo(uid, vid) {
		return nil
	}

	return d.edge(int(uid), int(vid))
}

// Weight returns the weight of x→y; 0 for x == y, +Inf and false when absent.
func (d *DirectedView) Weight(xid, yid int64) (float64, bool) {
	if xid == yid && d.g.Contains(int(xid)) {
		return 0, true
	}
	if !d.HasEdgeFromTo(xid, yid) {
		return shortestpaths.Inf, false
	}

	return d.weight(int(xid), int(yid)), true
}

// UndirectedView presents a gps graph as a gonum.WeightedUndirected.
// Over a directed gps graph an arc in either direction makes x and y adjacent.
type UndirectedView struct{ view }

// Undirected returns an undirected view of g weighted by w (nil means 1).
func Undirected(g graph.Graph, w shortestpaths.Weigher) *UndirectedView {
	return &UndirectedView{view{g: g, w: w}}
}

// From returns every vertex adjacent to id.
func (u *UndirectedView) From(id int64) gonum.Nodes {
	v := int(id)
	if !u.g.Contains(v) {
		return gonum.Empty
	}

	return nodes(u.g.Successors(v), u.g.Predecessors(v))
}

func (u *UndirectedView) HasEdgeBetween(xid, yid int64) bool {
	x, y := int(xid), int(yid)
	return u.g.ContainsEdge(x, y) || u.g.ContainsEdge(y, x)
}

func (u *UndirectedView) Edge(uid, vid int64) gonum.Edge { return u.EdgeBetween(uid, vid) }

func (u *UndirectedView) EdgeBetween(xid, yid int64) gonum.Edge {
	if e := u.WeightedEdgeBetween(xid, yid); e != nil {
		return e
	}

	return nil
}

func (u *UndirectedView) WeightedEdge(uid, vid int64) gonum.WeightedEdge {
	return u.WeightedEdgeBetween(uid, vid)
}

// WeightedEdgeBetween returns the {x,y} edge oriented from x. Its weight is
// taken from (x, y) when that orientation exists, otherwise from (y, x).
func (u *UndirectedView) WeightedEdgeBetween(xid, yid int64) gonum.WeightedEdge {
	w, ok := u.Weight(xid, yid)
	if !ok || (xid == yid && !u.g.ContainsEdge(int(xid), int(xid))) {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(xid), T: simple.Node(yid), W: w}
}

// Weight returns the weight of {x,y}; 0 for x == y, +Inf and false when absent.
func (u *UndirectedView) Weight(xid, yid int64) (float64, bool) {
	x, y := int(xid), int(yid)
	switch {
	case x == y && u.g.Contains(x):
		return 0, true
	case u.g.ContainsEdge(x, y):
		return u.weight(x, y), true
	case u.g.ContainsEdge(y, x):
		return u.weight(y, x), true
	}

	return shortestpaths.Inf, false
}
