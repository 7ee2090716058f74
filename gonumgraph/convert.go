package gonumgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/quickunion/unionfind"
)

// ToUndirected builds an undirected gonum graph with nodes 0..numVertices-1
// and one edge per distinct pair in edges. Self-loops are dropped since
// simple graphs cannot hold them; they never affect connectivity.
//
// Error Conditions:
//   - unionfind.ErrNegativeVertices : numVertices < 0.
//   - unionfind.ErrVertexOutOfRange : an endpoint outside [0, numVertices).
func ToUndirected(numVertices int, edges []unionfind.Edge) (*simple.UndirectedGraph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: got %d", unionfind.ErrNegativeVertices, numVertices)
	}

	g := simple.NewUndirectedGraph()
	for v := 0; v < numVertices; v++ {
		g.AddNode(simple.Node(v))
	}
	for idx, e := range edges {
		if e.P < 0 || e.P >= numVertices || e.Q < 0 || e.Q >= numVertices {
			return nil, fmt.Errorf("edge %d (%d, %d): %w", idx, e.P, e.Q, unionfind.ErrVertexOutOfRange)
		}
		if e.P == e.Q {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(e.P), T: simple.Node(e.Q)})
	}

	return g, nil
}

// FromGraph builds a partition from g. Node IDs are mapped to vertex indices
// in ascending ID order; ids[i] is the gonum ID of vertex i.
//
// Error Conditions:
//   - ErrNilGraph : g == nil.
//
// Complexity: O(V log V + E·lg V).
func FromGraph(g graph.Graph) (*unionfind.Partition, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 1. Dense, deterministic vertex numbering.
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// 2. One union per outgoing adjacency.
	p, err := unionfind.New(len(ids))
	if err != nil {
		return nil, nil, err
	}
	for i, id := range ids {
		to := g.From(id)
		for to.Next() {
			if _, err := p.Union(i, index[to.Node().ID()]); err != nil {
				return nil, nil, err
			}
		}
	}

	return p, ids, nil
}
