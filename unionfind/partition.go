package unionfind

import "fmt"

// Partition is a weighted quick-union disjoint-set over vertices 0..Len()-1.
//
// The zero value is an empty partition (Len() == 0); use New to size it.
type Partition struct {
	parent []int // parent[i] == i for roots
	size   []int // tree size, valid only at roots
	count  int   // number of roots
	opts   Options
}

// New creates a Partition of numVertices singleton components.
//
// Error Conditions:
//   - ErrNegativeVertices : numVertices < 0.
//   - ErrTooManyVertices  : numVertices > MaxVertices.
//
// Steps:
//  1. Reject a negative or oversized universe.
//  2. Apply options on top of DefaultOptions().
//  3. Point every vertex at itself with tree size 1; count = numVertices.
//
// Complexity: O(n) time and memory.
func New(numVertices int, opts ...Option) (*Partition, error) {
	// 1. Negative-length containers are never created.
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertices, numVertices)
	}
	// Oversized universes are a construction error too.
	if numVertices > MaxVertices {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyVertices, numVertices, MaxVertices)
	}

	// 2. Resolve configuration: defaults first, then each Option in order.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Allocate both arrays once; they are never resized.
	p := &Partition{
		parent: make([]int, numVertices), // parent pointers
		size:   make([]int, numVertices), // tree sizes at roots
		count:  numVertices,              // every vertex is its own component
		opts:   o,
	}
	// Every vertex starts as its own root of a one-vertex tree.
	for i := range p.parent {
		p.parent[i] = i // reflexive: i is connected to itself
		p.size[i] = 1   // singleton tree
	}

	return p, nil
}

// Len returns the fixed number of vertices in the universe.
func (p *Partition) Len() int {
	return len(p.parent)
}

// Count returns the current number of connected components.
func (p *Partition) Count() int {
	return p.count
}

// Find returns the root of v's tree.
// Parent pointers are followed without path compression.
//
// Error Conditions:
//   - ErrVertexOutOfRange : v < 0 or v >= Len().
//
// Complexity: O(depth) ≤ O(lg n).
func (p *Partition) Find(v int) (int, error) {
	if err := p.validate(v); err != nil {
		return 0, err
	}

	return p.root(v), nil
}

// Connected reports whether a and b belong to the same component.
//
// Error Conditions:
//   - ErrVertexOutOfRange : either vertex outside [0, Len()).
func (p *Partition) Connected(a, b int) (bool, error) {
	if err := p.validate(a); err != nil {
		return false, err
	}
	if err := p.validate(b); err != nil {
		return false, err
	}

	return p.root(a) == p.root(b), nil
}

// Union merges the components of a and b using union by size.
// It reports whether a merge happened: false means a and b were already
// connected and nothing changed.
//
// Error Conditions:
//   - ErrVertexOutOfRange : either vertex outside [0, Len()).
//
// Steps:
//  1. Validate both endpoints.
//  2. Resolve roots i = root(a), j = root(b); equal roots are a no-op.
//  3. Attach the smaller tree under the larger; ties put j under i.
//  4. Decrement the component count and fire OnUnion.
//
// Complexity: O(lg n).
func (p *Partition) Union(a, b int) (bool, error) {
	// 1. Both endpoints must be inside the universe.
	if err := p.validate(a); err != nil {
		return false, err
	}
	if err := p.validate(b); err != nil {
		return false, err
	}

	// 2-4. Merge roots.
	return p.link(p.root(a), p.root(b)), nil
}

// Size returns the number of vertices in v's component.
//
// Error Conditions:
//   - ErrVertexOutOfRange : v outside [0, Len()).
func (p *Partition) Size(v int) (int, error) {
	if err := p.validate(v); err != nil {
		return 0, err
	}

	return p.size[p.root(v)], nil
}

// CountConnectedComponents applies edges in order, merging every pair that is
// not yet connected, and returns the resulting component count.
//
// All endpoints are validated before the first merge, so an out-of-range
// edge leaves the partition unchanged.
//
// Error Conditions:
//   - ErrVertexOutOfRange : some edge endpoint outside [0, Len()); the error names the edge index.
//
// The final count and connectivity do not depend on edge order; tree shapes do.
//
// Complexity: O(E·lg n).
func (p *Partition) CountConnectedComponents(edges []Edge) (int, error) {
	// 1. Validate the whole batch up front.
	for idx, e := range edges {
		if err := p.validate(e.P); err != nil {
			return p.count, fmt.Errorf("edge %d (%d, %d): %w", idx, e.P, e.Q, err)
		}
		if err := p.validate(e.Q); err != nil {
			return p.count, fmt.Errorf("edge %d (%d, %d): %w", idx, e.P, e.Q, err)
		}
	}

	// 2. Skip connected pairs, merge the rest.
	for _, e := range edges {
		i, j := p.root(e.P), p.root(e.Q) // roots of both endpoints
		if i == j {
			// Already in the same component; nothing to merge.
			continue
		}
		p.link(i, j) // union by size, count--
	}

	return p.count, nil
}

// Components returns the vertices grouped by component.
// Groups are ordered by their smallest vertex; each group is ascending.
//
// Complexity: O(n·lg n).
func (p *Partition) Components() [][]int {
	groups := make(map[int][]int, p.count)
	order := make([]int, 0, p.count)
	// Iterating v ascending makes each group ascending and records
	// roots in order of their smallest member.
	for v := range p.parent {
		r := p.root(v)
		if _, ok := groups[r]; !ok {
			order = append(order, r) // first sighting of this root
		}
		groups[r] = append(groups[r], v)
	}

	// Emit groups in first-sighting order.
	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, groups[r])
	}

	return out
}

// validate reports ErrVertexOutOfRange for any v outside [0, Len()).
func (p *Partition) validate(v int) error {
	if v < 0 || v >= len(p.parent) {
		return rangeError(v, len(p.parent))
	}

	return nil
}

// root walks parent pointers to the root. v must be valid.
func (p *Partition) root(v int) int {
	// Walk up until the root (parent[v] == v); paths are not compressed.
	for v != p.parent[v] {
		v = p.parent[v]
	}

	return v
}

// link merges two roots by size and reports whether they differed.
func (p *Partition) link(i, j int) bool {
	if i == j {
		// Same root: already connected.
		return false
	}

	// Make the smaller tree's root point at the larger tree's root.
	// On equal sizes j goes under i.
	root, absorbed := i, j
	if p.size[i] < p.size[j] {
		root, absorbed = j, i
	}
	p.parent[absorbed] = root
	p.size[root] += p.size[absorbed] // surviving root absorbs the whole tree
	p.count--                        // one less connected component

	// Notify the hook, if any.
	if p.opts.OnUnion != nil {
		p.opts.OnUnion(root, absorbed)
	}

	return true
}
