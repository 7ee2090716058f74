// Package edgelist reads undirected edge lists in the plain-text format used
// by the algs4 union-find data sets (tinyUF.txt, mediumUF.txt, largeUF.txt):
//
//	N
//	p q
//	p q
//	...
//
// Tokens are separated by any whitespace, so line layout is irrelevant: the
// first integer is the vertex count and every following pair is an edge.
//
// The reader checks syntax only. Endpoint ranges are validated by
// unionfind.Partition when the edges are applied.
package edgelist
