package builder

import "errors"

// Sentinel errors. Constructors wrap them with method context via %w;
// branch with errors.Is.
var (
	// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
	// smaller than the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic step ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates BuildGraph could not run a constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
