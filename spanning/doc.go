// Package spanning builds spanning forests and minimum spanning trees on top
// of unionfind.Partition.
//
// What & Why
//
//   - Forest keeps exactly the edges that merged two components while an edge
//     list is applied in order. Those edges form a spanning forest: one tree
//     per component, n - components edges in total, no cycles.
//
//   - Kruskal sorts weighted edges by ascending weight (stable, so equal
//     weights keep input order) and runs the same merge loop, stopping once
//     n-1 edges are accepted. The result is a minimum spanning tree.
//
// Complexity
//
//	Forest:  O(E·lg V).
//	Kruskal: O(E log E + E·lg V); sorting dominates.
//
// Error Conditions
//
//	ErrDisconnected                 - Kruskal on |V| == 0, or |V| > 1 with no spanning tree.
//	unionfind.ErrNegativeVertices   - negative vertex count.
//	unionfind.ErrTooManyVertices    - vertex count above unionfind.MaxVertices.
//	unionfind.ErrVertexOutOfRange   - an endpoint outside [0, n).
package spanning
