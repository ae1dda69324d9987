package labeled

import "errors"

// ErrEdgeNotFound indicates a label was set on an edge that does not exist.
var ErrEdgeNotFound = errors.New("labeled: edge not found")
