// SPDX-License-Identifier: MIT

package topology_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/topology"
)

// ExampleGraph_SteinerTree connects three corners of a 3×3 device.
func ExampleGraph_SteinerTree() {
	grid, _ := topology.Grid(3, 3)
	tree, err := grid.SteinerTree(qubit.Ints(0, 2, 8))
	if err != nil {
		fmt.Println(err)
		return
	}
	var couplers []string
	for _, e := range tree.Edges() {
		couplers = append(couplers, fmt.Sprintf("%v-%v", e.From, e.To))
	}
	fmt.Println(strings.Join(couplers, " "))
	center, _ := tree.Center()
	fmt.Println("center:", center)
	// Output:
	// 0-1 1-2 2-5 5-8
	// center: [2]
}
