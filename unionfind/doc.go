// Package unionfind provides a weighted quick-union disjoint-set structure
// (Partition) over a fixed universe of integer vertices 0..n-1.
//
// What & Why
//
//   - A Partition answers dynamic connectivity questions: given a stream of
//     symmetric connections (p, q), are two vertices in the same connected
//     component, and how many components remain?
//   - Connectivity is an equivalence relation: reflexive, symmetric and
//     transitive (a~b and b~c ⇒ a~c). Each component is stored as a tree
//     whose root is the canonical identifier of the component.
//
// Data layout
//
//	parent[i] - parent pointer of vertex i (roots point to themselves).
//	size[i]   - number of vertices in the tree rooted at i (meaningful for roots only).
//	count     - number of distinct roots.
//
// Both slices are allocated once by New and never resized.
//
// Algorithm
//
//   - Find follows parent pointers until it reaches a root. No path
//     compression is performed, so repeated finds on a deep tree stay
//     O(depth).
//   - Union attaches the root of the smaller tree under the root of the larger
//     one (union by size). On equal sizes q's root goes under p's root.
//     This keeps every tree depth ≤ lg n.
//
// Complexity
//
//	New:                      O(n) time, O(n) memory.
//	Find, Connected, Union:   O(lg n).
//	CountConnectedComponents: O(E·lg n) for E edges.
//
// Errors
//
//	ErrNegativeVertices - New called with n < 0.
//	ErrTooManyVertices  - New called with n > MaxVertices.
//	ErrVertexOutOfRange - a vertex outside [0, n) was passed to any query or edge list.
//
// Concurrency
//
//	A Partition has no internal locking. It is meant to be owned by a single
//	goroutine; callers that share one must serialize every call themselves.
//
// Example
//
//	p, _ := unionfind.New(10)
//	n, _ := p.CountConnectedComponents([]unionfind.Edge{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}})
//	fmt.Println(n) // 5
package unionfind
