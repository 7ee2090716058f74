package unionfind_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quickunion/unionfind"
)

// ExamplePartition_CountConnectedComponents runs the classic ten-vertex fixture.
// Five edges, none redundant: 10 - 5 = 5 components remain.
func ExamplePartition_CountConnectedComponents() {
	// 1. Ten singleton vertices.
	p, err := unionfind.New(10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Apply the edge list.
	n, err := p.CountConnectedComponents([]unionfind.Edge{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Query the result.
	ok, _ := p.Connected(8, 9)
	fmt.Println("components:", n)
	fmt.Println("8~9:", ok)
	// Output:
	// components: 5
	// 8~9: true
}

// ExamplePartition_Union shows that a redundant union is a no-op.
func ExamplePartition_Union() {
	p, _ := unionfind.New(5)
	for _, e := range []unionfind.Edge{{0, 1}, {1, 2}, {2, 0}} {
		merged, _ := p.Union(e.P, e.Q)
		fmt.Printf("union(%d,%d) merged=%v count=%d\n", e.P, e.Q, merged, p.Count())
	}
	// Output:
	// union(0,1) merged=true count=4
	// union(1,2) merged=true count=3
	// union(2,0) merged=false count=3
}

// ExamplePartition_Find shows the bounds check on vertex indices.
func ExamplePartition_Find() {
	p, _ := unionfind.New(3)
	_, err := p.Find(3)
	fmt.Println(errors.Is(err, unionfind.ErrVertexOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// unionfind: vertex out of range: vertex 3 not in [0, 3)
}
