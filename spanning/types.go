package spanning

import (
	"errors"

	"github.com/katalvlaran/quickunion/unionfind"
)

// ErrDisconnected indicates the edges do not connect every vertex, so no
// spanning tree exists. It also covers the empty graph.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// WeightedEdge is an undirected edge with an integer cost.
type WeightedEdge struct {
	unionfind.Edge

	// Weight is the cost of including the edge.
	Weight int64
}
