package spanning

import "github.com/katalvlaran/quickunion/unionfind"

// Forest returns, in input order, the edges that merged two components while
// edges were applied to a fresh partition of numVertices vertices.
//
// Error Conditions:
//   - unionfind.ErrNegativeVertices : numVertices < 0.
//   - unionfind.ErrTooManyVertices  : numVertices > unionfind.MaxVertices.
//   - unionfind.ErrVertexOutOfRange : an endpoint outside [0, numVertices).
//
// len(result) == numVertices - number of components.
func Forest(numVertices int, edges []unionfind.Edge) ([]unionfind.Edge, error) {
	// 1. Fresh partition; rejects negative or oversized universes.
	p, err := unionfind.New(numVertices)
	if err != nil {
		return nil, err
	}

	// 2. A forest never has more than min(E, V) edges.
	forest := make([]unionfind.Edge, 0, min(len(edges), numVertices))
	for _, e := range edges {
		// Union bounds-checks both endpoints and reports whether it merged.
		merged, err := p.Union(e.P, e.Q)
		if err != nil {
			return nil, err
		}
		if merged {
			// Only merging edges belong to the forest.
			forest = append(forest, e)
		}
	}

	return forest, nil
}
