package traversal

import (
	"slices"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/gps/graph"
)

// Traversal is a resumable, fringe-driven walk over a graph.Graph.
type Traversal struct {
	graph   graph.Graph
	fringe  Fringe
	opts    Options
	marked  bits.Bits
	stopped bool
	buf     []int // successor scratch space
}

// New returns a Traversal of g using f as its fringe.
// Returns ErrGraphNil or ErrFringeNil for nil arguments.
func New(g graph.Graph, f Fringe, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if f == nil {
		return nil, ErrFringeNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Traversal{
		graph:  g,
		fringe: f,
		opts:   o,
		marked: bits.New(g.MaxVertex() + 1),
	}, nil
}

// NewDepthFirst returns a Traversal over g with a Stack fringe.
func NewDepthFirst(g graph.Graph, opts ...Option) (*Traversal, error) {
	return New(g, NewStack(), opts...)
}

// NewBreadthFirst returns a Traversal over g with a Queue fringe.
func NewBreadthFirst(g graph.Graph, opts ...Option) (*Traversal, error) {
	return New(g, NewQueue(), opts...)
}

// Traverse pushes the live roots onto the fringe and processes items until
// the fringe is empty or the traversal is halted.
//
// Steps:
//  1. Push each live root; non-live roots are ignored.
//  2. Pop an item. A negative item -v calls PostVisit(v).
//  3. A positive, unmarked, live item v is marked and passed to Visit.
//  4. v is scheduled: its post-visit sentinel and accepted successors are
//     pushed. This happens even when Visit returned false with HaltOnFalse,
//     so halting never strands the vertices behind v.
//  5. Repeat until the fringe is empty, a hook halts the loop, or Stop is
//     called.
//
// Returns:
//   - true iff every Visit and PostVisit hook invoked during this call
//     returned true.
//
// Calling Traverse with no roots resumes a halted traversal from the
// pending fringe items.
//
// Complexity: O(V + E) fringe operations per full traversal.
func (t *Traversal) Traverse(roots ...int) bool {
	for _, r := range roots {
		if t.graph.Contains(r) {
			t.fringe.Push(r)
		}
	}

	t.stopped = false
	ok := true
	for t.fringe.Len() > 0 && !t.stopped {
		item := t.fringe.Pop()

		// post-visit sentinel
		if item < 0 {
			v := -item
			t.debug("post-visit", "vertex", v)
			if !t.opts.PostVisit(v) {
				ok = false
				t.stopped = t.opts.HaltOnFalse
			}
			continue
		}

		v := item
		if t.Marked(v) || !t.graph.Contains(v) {
			continue
		}
		t.Mark(v)
		t.debug("visit", "vertex", v)
		if !t.opts.Visit(v) {
			ok = false
			t.stopped = t.opts.HaltOnFalse
		}

		// v is marked now, so its successors must be queued even when
		// halting or a resumed walk could never reach them.
		t.schedule(v)
	}

	return ok
}

// schedule pushes the post-visit sentinel and qualifying successors of v.
func (t *Traversal) schedule(v int) {
	t.buf = slices.AppendSeq(t.buf[:0], t.graph.Successors(v))
	if t.opts.ShouldPostVisit(v) {
		t.fringe.Push(-v)
	}
	if t.opts.ReverseSuccessors(v) {
		slices.Reverse(t.buf)
	}
	for _, w := range t.buf {
		if t.opts.ProcessSuccessor(v, w, t.Marked(w)) {
			t.debug("push", "from", v, "to", w)
			t.fringe.Push(w)
		}
	}
}

// Stop makes the running Traverse return once the current vertex has been
// fully scheduled. Pending fringe items are kept.
func (t *Traversal) Stop() { t.stopped = true }

// Marked reports whether v has been visited since the last Clear.
func (t *Traversal) Marked(v int) bool {
	return v > 0 && v < t.marked.Num && t.marked.Bit(v) == 1
}

// Mark flags v as visited.
func (t *Traversal) Mark(v int) {
	if v <= 0 {
		return
	}
	if v >= t.marked.Num {
		t.grow(v)
	}
	t.marked.SetBit(v, 1)
}

// Unmark clears v's mark so a later removal from the fringe visits it again.
func (t *Traversal) Unmark(v int) {
	if t.Marked(v) {
		t.marked.SetBit(v, 0)
	}
}

// Clear unmarks every vertex and empties the fringe.
func (t *Traversal) Clear() {
	t.marked.ClearAll()
	t.fringe.Clear()
	t.stopped = false
}

// Fringe exposes the underlying fringe.
func (t *Traversal) Fringe() Fringe { return t.fringe }

// Graph returns the traversed graph.
func (t *Traversal) Graph() graph.Graph { return t.graph }

// grow reallocates the mark set to hold at least v+1 bits.
func (t *Traversal) grow(v int) {
	n := max(2*t.marked.Num, v+1, t.graph.MaxVertex()+1)
	nb := bits.New(n)
	copy(nb.Bits, t.marked.Bits)
	t.marked = nb
}

func (t *Traversal) debug(msg string, kv ...any) {
	if t.opts.Logger != nil {
		t.opts.Logger.Debug(msg, kv...)
	}
}
