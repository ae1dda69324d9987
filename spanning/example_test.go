package spanning_test

import (
	"fmt"

	"github.com/katalvlaran/gps/builder"
	"github.com/katalvlaran/gps/shortestpaths"
	"github.com/katalvlaran/gps/spanning"
)

// Every spanning tree of a unit-weight wheel has n-1 edges; Prim from the
// hub picks the spokes.
func ExamplePrim() {
	b, err := builder.BuildGraph(nil, builder.Wheel(6))
	if err != nil {
		fmt.Println(err)
		return
	}

	tree, err := spanning.Prim(b.Graph, shortestpaths.Uniform(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range tree.Edges {
		fmt.Printf("%d-%d ", e.U, e.V)
	}
	fmt.Println(tree.Weight)
	// Output: 1-2 1-3 1-4 1-5 1-6 5
}
