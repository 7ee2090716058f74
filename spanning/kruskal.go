package spanning

import (
	"sort"

	"github.com/katalvlaran/quickunion/unionfind"
)

// Kruskal computes a minimum spanning tree over vertices 0..numVertices-1.
//
// Error Conditions:
//   - ErrDisconnected               : numVertices == 0, or the edges leave more than one component.
//   - unionfind.ErrNegativeVertices : numVertices < 0.
//   - unionfind.ErrTooManyVertices  : numVertices > unionfind.MaxVertices.
//   - unionfind.ErrVertexOutOfRange : an endpoint outside [0, numVertices).
//
// Steps:
//  1. Build the partition; this rejects a negative vertex count.
//  2. Validate every endpoint and drop self-loops, before any early return.
//  3. |V| == 0 → ErrDisconnected; |V| == 1 → empty tree.
//  4. Stable sort by ascending Weight so ties keep input order.
//  5. Accept every edge whose endpoints are still disjoint; stop at |V|-1 edges.
//  6. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + E·lg V). Memory: O(V + E).
func Kruskal(numVertices int, edges []WeightedEdge) ([]WeightedEdge, int64, error) {
	// 1. Partition over the whole universe.
	p, err := unionfind.New(numVertices)
	if err != nil {
		// Negative or oversized universe: surface the unionfind sentinel.
		return nil, 0, err
	}

	// 2. Validate endpoints and filter self-loops.
	candidates := make([]WeightedEdge, 0, len(edges)) // non-loop edges
	for _, e := range edges {
		// Connected performs the bounds check on both endpoints.
		if _, err := p.Connected(e.P, e.Q); err != nil {
			return nil, 0, err
		}
		if e.P == e.Q {
			// Self-loops can never join two components.
			continue
		}
		candidates = append(candidates, e)
	}

	// 3. Degenerate universes.
	if numVertices == 0 {
		// By convention the empty graph has no spanning tree.
		return nil, 0, ErrDisconnected
	}
	if numVertices == 1 {
		// A single vertex is spanned by zero edges with total weight 0.
		return []WeightedEdge{}, 0, nil
	}

	// 4. Cheapest first; stable so equal weights keep input order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 5. Greedy merge.
	var (
		mst         []WeightedEdge // accepted edges
		totalWeight int64          // sum of accepted weights
	)
	for _, e := range candidates {
		merged, _ := p.Union(e.P, e.Q) // endpoints validated in step 2
		if !merged {
			// Endpoints already connected: this edge would close a cycle.
			continue
		}
		mst = append(mst, e)    // include edge in the tree
		totalWeight += e.Weight // accumulate weight
		// With |V|-1 edges the tree is complete.
		if len(mst) == numVertices-1 {
			break
		}
	}

	// 6. A spanning tree has exactly |V|-1 edges.
	if len(mst) < numVertices-1 {
		return nil, 0, ErrDisconnected
	}

	// 7. Return the tree and its total weight.
	return mst, totalWeight, nil
}
