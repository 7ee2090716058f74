package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quickunion/edgelist"
)

// ExampleRead parses a small edge list.
func ExampleRead() {
	list, err := edgelist.Read(strings.NewReader("5\n0 1\n1 2\n2 0\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(list.NumVertices, list.Edges)
	// Output: 5 [{0 1} {1 2} {2 0}]
}
