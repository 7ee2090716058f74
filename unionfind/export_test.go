package unionfind

// Depth exposes the number of parent hops from v to its root for tests.
func (p *Partition) Depth(v int) int {
	d := 0
	for v != p.parent[v] {
		v = p.parent[v]
		d++
	}

	return d
}
