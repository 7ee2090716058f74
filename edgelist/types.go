package edgelist

import (
	"errors"

	"github.com/katalvlaran/quickunion/unionfind"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrOpen indicates the input file could not be opened.
	ErrOpen = errors.New("edgelist: cannot open input")

	// ErrEmptyInput indicates the input holds no vertex count.
	ErrEmptyInput = errors.New("edgelist: input is empty")

	// ErrMalformedToken indicates a token that is not a base-10 integer.
	ErrMalformedToken = errors.New("edgelist: malformed integer token")

	// ErrDanglingVertex indicates an odd trailing token with no partner.
	ErrDanglingVertex = errors.New("edgelist: trailing vertex without a pair")

	// ErrNegativeVertices indicates a negative vertex count.
	ErrNegativeVertices = errors.New("edgelist: vertex count must be non-negative")
)

// EdgeList is a parsed input: the universe size and the edges in file order.
type EdgeList struct {
	// NumVertices is the first token of the input.
	NumVertices int

	// Edges holds every (p, q) pair that followed.
	Edges []unionfind.Edge
}
