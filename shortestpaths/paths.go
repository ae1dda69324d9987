package shortestpaths

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/traversal"
)

// ShortestPaths computes single-source shortest paths over a graph.Graph.
// Results are valid after SetPaths returns nil and until the graph changes.
type ShortestPaths struct {
	graph   graph.Graph
	source  int
	weigher Weigher
	store   Store
	opts    Options

	queue *traversal.IndexedPriority
	trav  *traversal.Traversal
	err   error // first relaxation failure of the current run
	done  bool  // destination settled; later relaxations are ignored
}

// New returns a search from source over g, weighted by w, with state in s.
func New(g graph.Graph, source int, w Weigher, s Store, opts ...Option) (*ShortestPaths, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if w == nil {
		return nil, ErrWeigherNil
	}
	if s == nil {
		return nil, ErrStoreNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sp := &ShortestPaths{graph: g, source: source, weigher: w, store: s, opts: o}
	sp.queue = traversal.NewIndexedPriority(sp.less)
	trav, err := traversal.New(g, sp.queue,
		traversal.WithVisit(sp.settle),
		traversal.WithProcessSuccessor(sp.relax),
		traversal.WithHaltOnFalse(),
		traversal.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, err
	}
	sp.trav = trav

	return sp, nil
}

// NewSimple is New with a fresh ArrayStore.
func NewSimple(g graph.Graph, source int, w Weigher, opts ...Option) (*ShortestPaths, error) {
	return New(g, source, w, NewArrayStore(), opts...)
}

// SetPaths runs the search from the source, replacing any previous results.
//
// Steps:
//  1. Check that the source is live.
//  2. Reset the store: every weight +Inf, every predecessor 0, source 0.
//  3. Seed the fringe with all live vertices, ordered by weight plus
//     heuristic and then by id.
//  4. Pop the best vertex and relax its out-edges. A vertex whose weight
//     improves after it was settled is reopened.
//  5. Stop when the fringe is empty or the destination is settled with a
//     predecessor. Nothing is relaxed past the destination.
//
// Returns:
//   - ErrSourceNotFound if the source is not a live vertex.
//   - ErrNegativeWeight (wrapping the edge) if a negative weight is met;
//     the search stops and results so far are left in the store.
//
// Preconditions: the graph is not mutated during the call. With a
// heuristic, optimality needs it never to overestimate.
//
// Complexity: O((V + E) log V) with a consistent heuristic.
func (sp *ShortestPaths) SetPaths() error {
	if !sp.graph.Contains(sp.source) {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, sp.source)
	}

	sp.err, sp.done = nil, false
	sp.store.Reset(sp.graph.MaxVertex() + 1)
	for v := range sp.graph.Vertices() {
		sp.store.SetWeight(v, Inf)
		sp.store.SetPredecessor(v, 0)
	}
	sp.store.SetWeight(sp.source, 0)

	sp.trav.Clear()
	sp.trav.Traverse(slices.Collect(sp.graph.Vertices())...)

	return sp.err
}

// settle is the Visit hook; it halts once the destination is reached.
func (sp *ShortestPaths) settle(v int) bool {
	if sp.opts.Logger != nil {
		sp.opts.Logger.Debug("settle", "vertex", v, "weight", sp.store.Weight(v))
	}

	if v == sp.opts.Dest && sp.store.Predecessor(v) != 0 {
		sp.done = true
		return false
	}

	return true
}

// relax is the ProcessSuccessor hook; it reports whether v improved.
func (sp *ShortestPaths) relax(u, v int, marked bool) bool {
	if sp.err != nil || sp.done {
		return false
	}

	w := sp.weigher.Weight(u, v)
	if w < 0 {
		sp.err = fmt.Errorf("%w: %d->%d weight=%g", ErrNegativeWeight, u, v, w)
		sp.trav.Stop()
		return false
	}

	nw := sp.store.Weight(u) + w
	if !(nw < sp.store.Weight(v)) {
		return false
	}
	sp.store.SetWeight(v, nw)
	sp.store.SetPredecessor(v, u)
	if marked {
		sp.trav.Unmark(v)
	}
	if sp.opts.Logger != nil {
		sp.opts.Logger.Debug("relax", "from", u, "to", v, "weight", nw)
	}

	return true
}

// less orders the fringe by weight plus heuristic, then by vertex id.
// Among vertices with infinite totals the heuristic decides.
func (sp *ShortestPaths) less(a, b int) bool {
	ha, hb := sp.estimate(a), sp.estimate(b)
	pa, pb := sp.store.Weight(a)+ha, sp.store.Weight(b)+hb
	if math.IsInf(pa, 1) && math.IsInf(pb, 1) && ha != hb {
		return ha < hb
	}
	if pa != pb {
		return pa < pb
	}

	return a < b
}

func (sp *ShortestPaths) estimate(v int) float64 {
	if sp.opts.Heuristic == nil {
		return 0
	}

	return sp.opts.Heuristic(v)
}

// Weight returns the shortest known weight from the source to v, or Inf.
func (sp *ShortestPaths) Weight(v int) float64 {
	if !sp.graph.Contains(v) {
		return Inf
	}

	return sp.store.Weight(v)
}

// Predecessor returns v's predecessor on its shortest path, or 0.
func (sp *ShortestPaths) Predecessor(v int) int {
	if !sp.graph.Contains(v) {
		return 0
	}

	return sp.store.Predecessor(v)
}

// Reachable reports whether a path from the source to v was found.
func (sp *ShortestPaths) Reachable(v int) bool { return !math.IsInf(sp.Weight(v), 1) }

// Source returns the source vertex.
func (sp *ShortestPaths) Source() int { return sp.source }

// Dest returns the destination vertex, or 0 if none was set.
func (sp *ShortestPaths) Dest() int { return sp.opts.Dest }

// Graph returns the searched graph.
func (sp *ShortestPaths) Graph() graph.Graph { return sp.graph }

// PathTo returns the vertices from the source to v, inclusive. An
// unreachable v, or the source itself, yields []int{v}.
func (sp *ShortestPaths) PathTo(v int) []int {
	path := []int{v}
	limit := sp.graph.VertexSize()
	for u := sp.Predecessor(v); u != 0 && len(path) <= limit; u = sp.Predecessor(u) {
		path = append(path, u)
	}
	slices.Reverse(path)

	return path
}

// Path returns PathTo(Dest()). It is []int{0} when no destination was set.
func (sp *ShortestPaths) Path() []int { return sp.PathTo(sp.opts.Dest) }
