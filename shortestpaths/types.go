package shortestpaths

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil graph was passed to a constructor.
	ErrGraphNil = errors.New("shortestpaths: graph is nil")

	// ErrWeigherNil indicates a nil Weigher was passed to a constructor.
	ErrWeigherNil = errors.New("shortestpaths: weigher is nil")

	// ErrStoreNil indicates a nil Store was passed to New.
	ErrStoreNil = errors.New("shortestpaths: store is nil")

	// ErrSourceNotFound indicates the source vertex is not live.
	ErrSourceNotFound = errors.New("shortestpaths: source vertex not found")

	// ErrNegativeWeight indicates a relaxed edge reported a negative weight.
	ErrNegativeWeight = errors.New("shortestpaths: negative edge weight encountered")
)

// Inf is the weight of an unreachable vertex or an absent edge.
var Inf = math.Inf(1)

// Weigher supplies edge weights.
type Weigher interface {
	// Weight returns the weight of edge (u, v), or Inf if it is absent.
	Weight(u, v int) float64
}

// WeightFunc adapts a function to Weigher.
type WeightFunc func(u, v int) float64

// Weight calls f(u, v).
func (f WeightFunc) Weight(u, v int) float64 { return f(u, v) }

// Uniform returns a Weigher giving every edge weight w.
func Uniform(w float64) Weigher {
	return WeightFunc(func(_, _ int) float64 { return w })
}

// Heuristic estimates the remaining distance from v to the destination.
// It must not overestimate for results to be optimal.
type Heuristic func(v int) float64

// Store holds per-vertex search state.
//
// Weight must return Inf and Predecessor 0 for vertices never set since the
// last Reset.
type Store interface {
	// Reset discards all state; size is one more than the largest vertex id
	// that will be stored.
	Reset(size int)
	Weight(v int) float64
	SetWeight(v int, w float64)
	Predecessor(v int) int
	SetPredecessor(v, u int)
}

// Option configures a ShortestPaths.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Dest is the destination vertex, or 0 for single-source search.
	Dest int

	// Heuristic guides the search toward Dest. nil means zero everywhere.
	Heuristic Heuristic

	// Logger, if non-nil, receives debug-level search events.
	Logger *log.Logger
}

// DefaultOptions returns a single-source Dijkstra configuration.
func DefaultOptions() Options {
	return Options{Dest: 0, Heuristic: nil, Logger: nil}
}

// WithDest sets the destination; the search stops once it is settled.
func WithDest(v int) Option {
	return func(o *Options) {
		if v > 0 {
			o.Dest = v
		}
	}
}

// WithHeuristic installs an A* heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
