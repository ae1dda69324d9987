package traversal

import "container/heap"

// IndexedPriority is a min-heap fringe that holds each item at most once.
// Pushing an item already present repositions it instead, which gives
// O(log n) decrease-key when the priority behind less has just improved.
type IndexedPriority struct {
	h indexHeap
}

// NewIndexedPriority returns an empty indexed fringe ordered by less.
func NewIndexedPriority(less func(a, b int) bool) *IndexedPriority {
	return &IndexedPriority{h: indexHeap{less: less}}
}

// Push queues item, or fixes its position if it is already queued.
func (q *IndexedPriority) Push(item int) {
	if i, ok := q.h.index(item); ok {
		heap.Fix(&q.h, i)
		return
	}
	heap.Push(&q.h, item)
}

func (q *IndexedPriority) Pop() int { return heap.Pop(&q.h).(int) }
func (q *IndexedPriority) Len() int { return q.h.Len() }

// Contains reports whether item is queued.
func (q *IndexedPriority) Contains(item int) bool {
	_, ok := q.h.index(item)
	return ok
}

func (q *IndexedPriority) Clear() {
	for _, it := range q.h.items {
		q.h.pos[slot(it)] = 0
	}
	q.h.items = q.h.items[:0]
}

// slot folds signed items onto non-negative indexes so post-visit
// sentinels can share the position table.
func slot(item int) int {
	if item < 0 {
		return -2 * item
	}

	return 2*item + 1
}

// indexHeap implements container/heap.Interface. pos[slot(it)] holds the
// heap index of it plus one; zero means it is not queued.
type indexHeap struct {
	items []int
	pos   []int
	less  func(a, b int) bool
}

func (h *indexHeap) index(item int) (int, bool) {
	s := slot(item)
	if s >= len(h.pos) || h.pos[s] == 0 {
		return 0, false
	}

	return h.pos[s] - 1, true
}

func (h indexHeap) Len() int           { return len(h.items) }
func (h indexHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

func (h indexHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[slot(h.items[i])] = i + 1
	h.pos[slot(h.items[j])] = j + 1
}

func (h *indexHeap) Push(x any) {
	it := x.(int)
	s := slot(it)
	for len(h.pos) <= s {
		h.pos = append(h.pos, 0)
	}
	h.items = append(h.items, it)
	h.pos[s] = len(h.items)
}

func (h *indexHeap) Pop() any {
	n := len(h.items) - 1
	it := h.items[n]
	h.items = h.items[:n]
	h.pos[slot(it)] = 0

	return it
}
