// Package gonumgraph connects unionfind.Partition with gonum graphs.
//
// ToUndirected materializes an edge list as a *simple.UndirectedGraph whose
// node IDs are the vertex indices 0..n-1, so gonum's algorithms (topo, path,
// network) can run on the same data.
//
// FromGraph goes the other way: it assigns every node of an arbitrary
// graph.Graph a dense vertex index (ascending node ID order) and unions along
// every edge. For directed graphs this yields weakly connected components.
package gonumgraph
