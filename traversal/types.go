package traversal

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for traversal construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to a constructor.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrFringeNil is returned when New receives a nil Fringe.
	ErrFringeNil = errors.New("traversal: fringe is nil")

	// ErrNotDirected is returned by cycle-aware orderings on undirected graphs.
	ErrNotDirected = errors.New("traversal: graph is not directed")

	// ErrCycleDetected matches every *CycleError.
	ErrCycleDetected = errors.New("traversal: cycle detected")
)

// CycleError reports the vertex at which a back edge was found.
type CycleError struct {
	From, Vertex int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("traversal: cycle detected: edge %d->%d", e.From, e.Vertex)
}

// Is makes errors.Is(err, ErrCycleDetected) hold.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }

// Option configures a Traversal via functional arguments.
type Option func(*Options)

// Options is the capability set driving a Traversal.
type Options struct {
	// Visit is called when an unmarked vertex is removed from the fringe,
	// right after it is marked. Returning false signals termination.
	Visit func(v int) bool

	// PostVisit is called when a post-visit sentinel for v is removed.
	// Returning false signals termination.
	PostVisit func(v int) bool

	// ShouldPostVisit reports whether v gets a post-visit after its successors.
	ShouldPostVisit func(v int) bool

	// ReverseSuccessors reports whether v's successors are pushed in reverse.
	ReverseSuccessors func(v int) bool

	// ProcessSuccessor decides whether successor v of u is pushed.
	// marked is the current mark state of v.
	ProcessSuccessor func(u, v int, marked bool) bool

	// HaltOnFalse turns a false Visit/PostVisit result into a stop once the
	// current item has been handled.
	HaltOnFalse bool

	// Logger, if non-nil, receives debug-level traversal events.
	Logger *log.Logger
}

// DefaultOptions returns hooks that visit everything once:
//   - Visit/PostVisit return true
//   - no post-visits, no reversal
//   - only unmarked successors are pushed
func DefaultOptions() Options {
	return Options{
		Visit:             func(int) bool { return true },
		PostVisit:         func(int) bool { return true },
		ShouldPostVisit:   func(int) bool { return false },
		ReverseSuccessors: func(int) bool { return false },
		ProcessSuccessor:  func(_, _ int, marked bool) bool { return !marked },
	}
}

// WithVisit installs the pre-visit hook.
func WithVisit(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Visit = fn
		}
	}
}

// WithPostVisit installs the post-visit hook.
func WithPostVisit(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.PostVisit = fn
		}
	}
}

// WithShouldPostVisit installs the post-visit predicate.
func WithShouldPostVisit(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ShouldPostVisit = fn
		}
	}
}

// WithReverseSuccessors installs the successor-reversal predicate.
func WithReverseSuccessors(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ReverseSuccessors = fn
		}
	}
}

// WithProcessSuccessor installs the successor qualification test.
func WithProcessSuccessor(fn func(u, v int, marked bool) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ProcessSuccessor = fn
		}
	}
}

// WithHaltOnFalse makes a false Visit or PostVisit stop Traverse after the
// current item; a halted vertex still has its successors queued.
func WithHaltOnFalse() Option {
	return func(o *Options) {
		o.HaltOnFalse = true
	}
}

// WithLogger enables debug tracing. A nil logger disables it.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// always is a predicate that accepts every vertex.
func always(int) bool { return true }
