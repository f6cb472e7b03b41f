// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/rookpath/gridgraph"
)

// ExampleGridGraph_CheckMove walks the four moves out of the corner cell 2
// of a 3×3 grid:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Right would wrap into row 1 and Up would leave the grid.
func ExampleGridGraph_CheckMove() {
	gg, _ := gridgraph.NewGridGraph(2, 2)
	visited := gridgraph.NewVisitedSet(gg).With(2)

	for _, d := range gridgraph.Directions {
		next, err := gg.CheckMove(2, d, visited)
		if err != nil {
			fmt.Printf("%-5s %d: %v\n", d, next, err)
			continue
		}
		fmt.Printf("%-5s %d: ok\n", d, next)
	}

	// Output:
	// down  5: ok
	// right 3: gridgraph: horizontal move across rows
	// up    -1: gridgraph: cell before beginning
	// left  1: ok
}
