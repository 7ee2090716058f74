package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/quickunion/unionfind"
)

// BenchmarkCountConnectedComponents measures 10k vertices and 20k random edges.
func BenchmarkCountConnectedComponents(b *testing.B) {
	edges := randomEdges(10000, 20000, 42) // pre-build edges once
	b.ResetTimer()                         // exclude edge generation
	for i := 0; i < b.N; i++ {
		p, _ := unionfind.New(10000)
		_, _ = p.CountConnectedComponents(edges)
	}
}

// BenchmarkFind measures Find on a fully merged partition.
func BenchmarkFind(b *testing.B) {
	const n = 1 << 14
	p, _ := unionfind.New(n)
	_, _ = p.CountConnectedComponents(randomEdges(n, 4*n, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Find(i % n)
	}
}
