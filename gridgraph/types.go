package gridgraph

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no route exists between the requested endpoints.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrNotLand indicates a path endpoint that is water or outside the grid.
	ErrNotLand = errors.New("gridgraph: endpoint is not a land cell")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Option configures a Grid.
type Option func(*Options)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Logger, if non-nil, is handed to the searches this package runs.
	Logger *log.Logger
}

// DefaultOptions returns LandThreshold=1 (values >= 1 are land), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// WithLandThreshold sets the minimum land value.
func WithLandThreshold(t int) Option {
	return func(o *Options) { o.LandThreshold = t }
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithLogger enables debug tracing of searches.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
