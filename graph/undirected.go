package graph

// Undirected is a graph whose edges are unordered pairs. Successors and
// predecessors are not distinguished.
type Undirected struct {
	graphObj
}

var _ Graph = (*Undirected)(nil)

// NewUndirected returns an empty undirected graph.
func NewUndirected(opts ...Option) *Undirected {
	return &Undirected{graphObj: newGraphObj(false, opts...)}
}
