package depends

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Sentinel errors.
var (
	// ErrEmptyTarget indicates a rule or prerequisite with an empty name.
	ErrEmptyTarget = errors.New("depends: empty target name")

	// ErrDuplicateRule indicates two rules for one target both carry commands.
	ErrDuplicateRule = errors.New("depends: duplicate commands for target")

	// ErrUnknownTarget indicates a target that no rule or prerequisite names.
	ErrUnknownTarget = errors.New("depends: unknown target")

	// ErrCycle indicates a target that transitively depends on itself.
	ErrCycle = errors.New("depends: dependency cycle")
)

// Rule describes how to build Target once its Prereqs are built.
type Rule struct {
	Target   string
	Prereqs  []string
	Commands []string
}

// Option configures a Depends.
type Option func(*Options)

// Options holds Depends parameters.
type Options struct {
	// Logger, if non-nil, traces BuildOrder traversals at debug level.
	Logger *log.Logger
}

// DefaultOptions returns silent Options.
func DefaultOptions() Options { return Options{} }

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
