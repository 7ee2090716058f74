package gonumgraph

import "errors"

// ErrNilGraph indicates FromGraph was given a nil graph.
var ErrNilGraph = errors.New("gonumgraph: graph is nil")
