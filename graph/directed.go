package graph

// Directed is a graph whose edges are ordered pairs. Each vertex keeps a
// successor list and an inverse predecessor list.
type Directed struct {
	graphObj
}

var _ Graph = (*Directed)(nil)

// NewDirected returns an empty directed graph.
func NewDirected(opts ...Option) *Directed {
	return &Directed{graphObj: newGraphObj(true, opts...)}
}
