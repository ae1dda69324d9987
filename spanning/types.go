package spanning

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/shortestpaths"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("spanning: graph is nil")

	// ErrWeigherNil is returned for a nil Weigher.
	ErrWeigherNil = errors.New("spanning: weigher is nil")

	// ErrNotUndirected is returned when the graph is directed.
	ErrNotUndirected = errors.New("spanning: graph must be undirected")

	// ErrDisconnected is returned when no tree spans every vertex,
	// including the empty graph.
	ErrDisconnected = errors.New("spanning: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for an unrecognised Method.
	ErrUnknownMethod = errors.New("spanning: unknown method")
)

// Method names accepted by WithMethod.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// Edge is a tree edge with its weight. U is the endpoint closer to the
// root for Prim, and the smaller id for Kruskal.
type Edge struct {
	U, V   int
	Weight float64
}

// Tree is a spanning tree: its edges in the order they were chosen and
// their total weight.
type Tree struct {
	Edges  []Edge
	Weight float64
}

// Options configures Compute and Prim.
type Options struct {
	// Method is MethodKruskal (default) or MethodPrim.
	Method string

	// Root is Prim's start vertex; 0 means the smallest live vertex.
	Root int

	Logger *log.Logger
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

func WithRoot(v int) Option {
	return func(o *Options) { o.Root = v }
}

// WithLogger sends one debug event per chosen tree edge to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Compute runs the algorithm selected by opts.
func Compute(g graph.Graph, w shortestpaths.Weigher, opts ...Option) (Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return kruskal(g, w, o)
	case MethodPrim:
		return prim(g, w, o)
	default:
		return Tree{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

func validate(g graph.Graph, w shortestpaths.Weigher) error {
	switch {
	case g == nil:
		return ErrGraphNil
	case w == nil:
		return ErrWeigherNil
	case g.Directed():
		return ErrNotUndirected
	case g.VertexSize() == 0:
		return ErrDisconnected
	}

	return nil
}

func (t *Tree) add(o Options, u, v int, w float64) {
	t.Edges = append(t.Edges, Edge{U: u, V: v, Weight: w})
	t.Weight += w
	if o.Logger != nil {
		o.Logger.Debug("tree edge", "u", u, "v", v, "weight", w)
	}
}
