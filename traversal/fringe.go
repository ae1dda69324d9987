package traversal

import "container/heap"

// Fringe is the pending-work container of a Traversal. Items are vertex ids
// or negated ids (post-visit sentinels). Pop is only called when Len() > 0.
type Fringe interface {
	Push(item int)
	Pop() int
	Len() int
	Clear()
}

// Stack is a LIFO fringe; it yields depth-first order.
type Stack struct {
	items []int
}

// NewStack returns an empty LIFO fringe.
func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(item int) { s.items = append(s.items, item) }

func (s *Stack) Pop() int {
	n := len(s.items) - 1
	item := s.items[n]
	s.items = s.items[:n]

	return item
}

func (s *Stack) Len() int { return len(s.items) }
func (s *Stack) Clear()   { s.items = s.items[:0] }

// Queue is a FIFO fringe; it yields breadth-first order.
type Queue struct {
	items []int
	head  int
}

// NewQueue returns an empty FIFO fringe.
func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Push(item int) { q.items = append(q.items, item) }

func (q *Queue) Pop() int {
	item := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the buffer
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return item
}

func (q *Queue) Len() int { return len(q.items) - q.head }

func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}

// Priority is a min-heap fringe ordered by a caller-supplied less function.
// Duplicates are kept; a Traversal skips already-marked vertices on removal.
type Priority struct {
	h itemHeap
}

// NewPriority returns an empty priority fringe. less must be a strict weak
// order over items; it may consult external state as long as that state is
// not changed for items already in the fringe.
func NewPriority(less func(a, b int) bool) *Priority {
	return &Priority{h: itemHeap{less: less}}
}

func (p *Priority) Push(item int) { heap.Push(&p.h, item) }
func (p *Priority) Pop() int      { return heap.Pop(&p.h).(int) }
func (p *Priority) Len() int      { return p.h.Len() }
func (p *Priority) Clear()        { p.h.items = p.h.items[:0] }

// itemHeap adapts a less function to container/heap.
type itemHeap struct {
	items []int
	less  func(a, b int) bool
}

func (h itemHeap) Len() int           { return len(h.items) }
func (h itemHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap) Push(x any) { h.items = append(h.items, x.(int)) }

func (h *itemHeap) Pop() any {
	n := len(h.items) - 1
	item := h.items[n]
	h.items = h.items[:n]

	return item
}
