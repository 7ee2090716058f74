// Package quickunion is a small dynamic-connectivity toolkit built around a
// weighted quick-union disjoint-set.
//
// What is inside?
//
//	unionfind/    - Partition: find, connected, union by size, component count
//	edgelist/     - reader for "N, then p q pairs" edge-list files
//	spanning/     - spanning forests and Kruskal MST on top of Partition
//	gonumgraph/   - conversion to and from gonum graphs
//	cmd/unionfind - command that counts components in an edge-list file
//
// Quick ASCII example:
//
//	0   1───2   8───3───4───9   5───6   7
//
// is what the ten-vertex fixture {4-3, 3-8, 6-5, 9-4, 2-1} leaves behind:
// five connected components.
//
//	go get github.com/katalvlaran/quickunion
package quickunion
