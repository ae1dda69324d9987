// File: arena.go
// Role: Shared storage for Directed and Undirected graphs.
// Layout:
//   - slots[id] holds the adjacency of vertex id; slots[0] is never live.
//   - A slot is either live (holding adjacency) or free (its id sits in the pool).
//   - pred lists are maintained only for directed graphs.

package graph

import (
	"container/heap"
	"fmt"
	"iter"
	"slices"

	"github.com/soniakeys/bits"
)

// slot is one arena cell.
type slot struct {
	live bool
	succ []int // successors in insertion order (duplicates allowed)
	pred []int // predecessors; directed graphs only
}

// graphObj implements everything common to directed and undirected graphs.
type graphObj struct {
	directed bool
	slots    []slot
	free     idPool
	size     int // live vertices
}

func newGraphObj(directed bool, opts ...Option) graphObj {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return graphObj{
		directed: directed,
		slots:    make([]slot, 1, o.Capacity+1),
	}
}

// Directed reports whether edges are ordered pairs.
func (g *graphObj) Directed() bool { return g.directed }

// Contains reports whether v is a live vertex.
func (g *graphObj) Contains(v int) bool {
	return v > 0 && v < len(g.slots) && g.slots[v].live
}

// VertexSize returns the number of live vertices. O(1).
func (g *graphObj) VertexSize() int { return g.size }

// MaxVertex returns the largest live vertex id, or 0 for an empty graph.
func (g *graphObj) MaxVertex() int {
	for v := len(g.slots) - 1; v > 0; v-- {
		if g.slots[v].live {
			return v
		}
	}

	return 0
}

// Add allocates a vertex. Recycled ids are handed out smallest first;
// only when the pool is empty does the arena grow.
func (g *graphObj) Add() int {
	g.size++
	if g.free.Len() > 0 {
		v := heap.Pop(&g.free).(int)
		g.slots[v] = slot{live: true}

		return v
	}
	g.slots = append(g.slots, slot{live: true})

	return len(g.slots) - 1
}

// AddEdge appends v to u's successors. Directed graphs also record u as a
// predecessor of v; undirected graphs mirror the entry into v's list unless
// the edge is a self-loop, which is stored once.
//
// Returns the edge identity, or ErrVertexNotFound if either endpoint is not live.
func (g *graphObj) AddEdge(u, v int) (int, error) {
	if err := g.check(u); err != nil {
		return 0, err
	}
	if err := g.check(v); err != nil {
		return 0, err
	}

	g.slots[u].succ = append(g.slots[u].succ, v)
	if g.directed {
		g.slots[v].pred = append(g.slots[v].pred, u)
	} else if u != v {
		g.slots[v].succ = append(g.slots[v].succ, u)
	}

	return g.EdgeID(u, v), nil
}

// Remove deletes v, strips it from every adjacency list that references it,
// and returns its id to the pool.
func (g *graphObj) Remove(v int) error {
	if err := g.check(v); err != nil {
		return err
	}

	s := g.slots[v]
	if g.directed {
		for _, w := range s.succ {
			if w != v {
				g.slots[w].pred = without(g.slots[w].pred, v)
			}
		}
		for _, w := range s.pred {
			if w != v {
				g.slots[w].succ = without(g.slots[w].succ, v)
			}
		}
	} else {
		for _, w := range s.succ {
			if w != v {
				g.slots[w].succ = without(g.slots[w].succ, v)
			}
		}
	}

	g.slots[v] = slot{}
	heap.Push(&g.free, v)
	g.size--

	return nil
}

// RemoveEdge deletes one occurrence of the (u, v) edge. If either endpoint
// is no longer live the edge is already gone and this is a no-op.
func (g *graphObj) RemoveEdge(u, v int) {
	if !g.Contains(u) || !g.Contains(v) {
		return
	}

	var ok bool
	if g.slots[u].succ, ok = withoutOne(g.slots[u].succ, v); !ok {
		return
	}
	if g.directed {
		g.slots[v].pred, _ = withoutOne(g.slots[v].pred, u)
	} else if u != v {
		g.slots[v].succ, _ = withoutOne(g.slots[v].succ, u)
	}
}

// ContainsEdge reports whether (u, v) is an edge. Symmetric for undirected graphs.
func (g *graphObj) ContainsEdge(u, v int) bool {
	if !g.Contains(u) || !g.Contains(v) {
		return false
	}

	return slices.Contains(g.slots[u].succ, v)
}

// OutDegree returns the number of successor entries of v (0 if v is not live).
func (g *graphObj) OutDegree(v int) int {
	if !g.Contains(v) {
		return 0
	}

	return len(g.slots[v].succ)
}

// InDegree returns the number of predecessor entries of v. For undirected
// graphs it equals OutDegree.
func (g *graphObj) InDegree(v int) int {
	return len(g.preds(v))
}

// Successor returns the k-th successor of v in insertion order, or 0.
func (g *graphObj) Successor(v, k int) int {
	if !g.Contains(v) || k < 0 || k >= len(g.slots[v].succ) {
		return 0
	}

	return g.slots[v].succ[k]
}

// Predecessor returns the k-th predecessor of v, or 0.
func (g *graphObj) Predecessor(v, k int) int {
	p := g.preds(v)
	if k < 0 || k >= len(p) {
		return 0
	}

	return p[k]
}

// Successors yields the successors of v in insertion order.
func (g *graphObj) Successors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 0; g.Contains(v) && k < len(g.slots[v].succ); k++ {
			if !yield(g.slots[v].succ[k]) {
				return
			}
		}
	}
}

// Predecessors yields the predecessors of v in insertion order.
// Undirected graphs yield the same sequence as Successors.
func (g *graphObj) Predecessors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 0; k < len(g.preds(v)); k++ {
			if !yield(g.preds(v)[k]) {
				return
			}
		}
	}
}

// Vertices yields live vertex ids in ascending order. Liveness is checked
// at every step, so vertices removed mid-iteration are skipped.
func (g *graphObj) Vertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := 1; v < len(g.slots); v++ {
			if !g.slots[v].live {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields one Edge per distinct edge identity, ordered by ascending
// From and then by position in From's adjacency list. Parallel edges are
// reported once; undirected edges are reported from their lower endpoint.
func (g *graphObj) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		seen := bits.New(len(g.slots))
		for u := 1; u < len(g.slots); u++ {
			if !g.slots[u].live {
				continue
			}
			if seen.Num < len(g.slots) {
				seen = bits.New(len(g.slots))
			}
			row := g.slots[u].succ
			for _, v := range row {
				if !g.directed && v < u {
					continue
				}
				if seen.Bit(v) == 1 {
					continue
				}
				seen.SetBit(v, 1)
				if !yield(Edge{From: u, To: v}) {
					return
				}
			}
			for _, v := range row {
				seen.SetBit(v, 0)
			}
		}
	}
}

// EdgeSize returns the number of distinct edges.
func (g *graphObj) EdgeSize() int {
	n := 0
	for range g.Edges() {
		n++
	}

	return n
}

// EdgeID returns PairID(u, v) for directed graphs and UnorderedPairID(u, v)
// for undirected ones.
func (g *graphObj) EdgeID(u, v int) int {
	if g.directed {
		return PairID(u, v)
	}

	return UnorderedPairID(u, v)
}

// preds returns the predecessor list backing v (nil if v is not live).
func (g *graphObj) preds(v int) []int {
	if !g.Contains(v) {
		return nil
	}
	if g.directed {
		return g.slots[v].pred
	}

	return g.slots[v].succ
}

func (g *graphObj) check(v int) error {
	if !g.Contains(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return nil
}

// without removes every occurrence of v from list, in place.
func without(list []int, v int) []int {
	return slices.DeleteFunc(list, func(w int) bool { return w == v })
}

// withoutOne removes the first occurrence of v from list, in place.
func withoutOne(list []int, v int) ([]int, bool) {
	i := slices.Index(list, v)
	if i < 0 {
		return list, false
	}

	return slices.Delete(list, i, i+1), true
}
