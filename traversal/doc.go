// Package traversal implements one generalized graph traversal that expresses
// depth-first, breadth-first and priority-ordered search through a swappable
// fringe.
//
// What
//
//	A Traversal repeatedly removes an item from its Fringe. A positive item is
//	a vertex to visit; a negative item -v is a sentinel meaning "post-visit v
//	now". Visiting an unmarked vertex v:
//
//	  1. marks v and calls the Visit hook,
//	  2. collects v's successors (reversed if ReverseSuccessors(v)),
//	  3. pushes the sentinel -v if ShouldPostVisit(v),
//	  4. pushes each successor w for which ProcessSuccessor(v, w, marked(w)).
//
//	The removal discipline of the fringe decides the search order:
//
//	  NewStack()               LIFO      depth-first (post-visits give finish order)
//	  NewQueue()               FIFO      breadth-first
//	  NewPriority(less)        min-heap  best-first, duplicates allowed
//	  NewIndexedPriority(less) min-heap  best-first, one entry per item;
//	                                     re-pushing repositions (decrease-key)
//
// Hooks
//
//	Behavior is customized through functional options rather than subclassing:
//
//	  WithVisit(fn)              pre-visit; false signals "stop"
//	  WithPostVisit(fn)          post-visit; false signals "stop"
//	  WithShouldPostVisit(fn)    schedule a post-visit for v
//	  WithReverseSuccessors(fn)  push v's successors in reverse order
//	  WithProcessSuccessor(fn)   decide whether successor w of v is pushed
//	  WithHaltOnFalse()          make a false hook result stop the loop
//	  WithLogger(l)              debug tracing via charmbracelet/log
//
//	By default a false hook result is advisory: Traverse keeps draining the
//	fringe and reports false so the caller can stop supplying roots. With
//	WithHaltOnFalse, or after Stop, the loop returns as soon as the current
//	vertex has been scheduled and leaves the pending items in the fringe; a
//	later Traverse() resumes from them.
//
// Marks persist across Traverse calls until Clear, so a Traversal can be
// driven from several roots in turn (forest traversal) or restarted.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) fringe operations, times the fringe's per-op cost.
//   - Memory: O(V) mark bits plus the fringe (up to O(E) entries).
//
// Concurrency
//
//	Not safe for concurrent use. The graph must not be mutated while a
//	traversal over it is running.
package traversal
