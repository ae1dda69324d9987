package graph

// idPool is a min-heap of recycled vertex ids (container/heap.Interface).
type idPool []int

func (p idPool) Len() int           { return len(p) }
func (p idPool) Less(i, j int) bool { return p[i] < p[j] }
func (p idPool) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p *idPool) Push(x any) { *p = append(*p, x.(int)) }

func (p *idPool) Pop() any {
	old := *p
	n := len(old)
	id := old[n-1]
	*p = old[:n-1]

	return id
}
