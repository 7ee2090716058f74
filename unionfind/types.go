package unionfind

import (
	"errors"
	"fmt"
	"math"
)

// MaxVertices is the largest universe New accepts.
const MaxVertices = math.MaxInt32

// Sentinel errors for partition operations.
var (
	// ErrNegativeVertices indicates New was asked for a negative universe size.
	ErrNegativeVertices = errors.New("unionfind: number of vertices must be non-negative")

	// ErrTooManyVertices indicates New was asked for more than MaxVertices vertices.
	ErrTooManyVertices = errors.New("unionfind: number of vertices exceeds MaxVertices")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Len()).
	ErrVertexOutOfRange = errors.New("unionfind: vertex out of range")
)

// Edge is an unordered pair of vertices to be connected.
type Edge struct {
	// P is the first endpoint.
	P int

	// Q is the second endpoint.
	Q int
}

// UnionHook is invoked after a successful merge. root is the surviving root,
// absorbed is the root that was re-parented under it.
type UnionHook func(root, absorbed int)

// Options configures a Partition.
//
// Fields:
//
//	OnUnion UnionHook - optional callback fired once per merge (nil disables it).
type Options struct {
	// OnUnion is called after every union that merged two components.
	OnUnion UnionHook
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithOnUnion returns an Option that installs fn as the merge hook.
func WithOnUnion(fn UnionHook) Option {
	return func(o *Options) {
		o.OnUnion = fn
	}
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// rangeError attaches the offending vertex and the universe bound to ErrVertexOutOfRange.
func rangeError(v, n int) error {
	return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrVertexOutOfRange, v, n)
}
