package builder

import (
	"math/rand"
)

// Option customizes graph construction.
type Option func(*config)

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	directed bool
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

const defaultConstWeight = 1.0

// newConfig applies opts over deterministic defaults: undirected, no RNG,
// constant weight 1.
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirected builds a graph.Directed instead of a graph.Undirected.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG; use it to lock outcomes in tests.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. fn receives the
// configured RNG, which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithUniformIntWeights draws each weight uniformly from the integers in
// [lo, hi]. Requires an RNG at build time. Panics if hi < lo.
func WithUniformIntWeights(lo, hi int) Option {
	if hi < lo {
		panic("builder: WithUniformIntWeights(hi < lo)")
	}
	return func(c *config) {
		c.weightFn = func(r *rand.Rand) float64 {
			if r == nil {
				return float64(lo)
			}
			return float64(lo + r.Intn(hi-lo+1))
		}
	}
}
