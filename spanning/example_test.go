package spanning_test

import (
	"fmt"

	"github.com/katalvlaran/quickunion/spanning"
	"github.com/katalvlaran/quickunion/unionfind"
)

// ExampleKruskal runs Kruskal on a 5-vertex pentagon:
// 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12). The MST drops 0–4, total 11.
func ExampleKruskal() {
	edges := []spanning.WeightedEdge{
		{Edge: unionfind.Edge{P: 0, Q: 1}, Weight: 1},
		{Edge: unionfind.Edge{P: 0, Q: 4}, Weight: 12},
		{Edge: unionfind.Edge{P: 1, Q: 2}, Weight: 2},
		{Edge: unionfind.Edge{P: 2, Q: 3}, Weight: 3},
		{Edge: unionfind.Edge{P: 3, Q: 4}, Weight: 5},
	}

	mst, total, err := spanning.Kruskal(5, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range mst {
		fmt.Printf(" %d-%d", e.P, e.Q)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleForest keeps only the edges that joined two components.
func ExampleForest() {
	forest, _ := spanning.Forest(5, []unionfind.Edge{{P: 0, Q: 1}, {P: 1, Q: 2}, {P: 2, Q: 0}, {P: 3, Q: 4}})
	fmt.Println(forest)
	// Output: [{0 1} {1 2} {3 4}]
}
