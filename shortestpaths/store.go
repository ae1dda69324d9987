package shortestpaths

// ArrayStore is a slice-backed Store indexed by vertex id.
type ArrayStore struct {
	weights []float64
	preds   []int
}

var _ Store = (*ArrayStore)(nil)

// NewArrayStore returns an empty ArrayStore.
func NewArrayStore() *ArrayStore { return &ArrayStore{} }

// Reset sizes the store for ids below size; every weight becomes Inf and
// every predecessor 0.
func (s *ArrayStore) Reset(size int) {
	s.weights = s.weights[:0]
	s.preds = s.preds[:0]
	s.grow(size)
}

// Weight returns the stored weight of v, or Inf.
func (s *ArrayStore) Weight(v int) float64 {
	if v <= 0 || v >= len(s.weights) {
		return Inf
	}

	return s.weights[v]
}

// SetWeight stores w for v.
func (s *ArrayStore) SetWeight(v int, w float64) {
	if v <= 0 {
		return
	}
	s.grow(v + 1)
	s.weights[v] = w
}

// Predecessor returns the stored predecessor of v, or 0.
func (s *ArrayStore) Predecessor(v int) int {
	if v <= 0 || v >= len(s.preds) {
		return 0
	}

	return s.preds[v]
}

// SetPredecessor stores u as the predecessor of v.
func (s *ArrayStore) SetPredecessor(v, u int) {
	if v <= 0 {
		return
	}
	s.grow(v + 1)
	s.preds[v] = u
}

func (s *ArrayStore) grow(size int) {
	for len(s.weights) < size {
		s.weights = append(s.weights, Inf)
		s.preds = append(s.preds, 0)
	}
}
