package turncost_test

import (
	"fmt"

	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/turncost"
)

// ExampleModel_Edge prints the canonical cost of going straight, turning
// once and reversing.
func ExampleModel_Edge() {
	m := turncost.Default()
	fmt.Println(m.Edge(gridgraph.East, gridgraph.East))
	fmt.Println(m.Edge(gridgraph.East, gridgraph.North))
	fmt.Println(m.Edge(gridgraph.East, gridgraph.West))
	// Output:
	// 1
	// 1001
	// 2001
}
