// SPDX-License-Identifier: MIT
package depgraph_test

import (
	"fmt"

	"github.com/katalvlaran/algmoments/depgraph"
)

// ExampleGraph_Components shows how the term x*v*cw*wv splits for the
// dependence structure of a planar vehicle: positions depend on heading and
// speed, the heading disturbances depend on each other, and wv is on its own.
func ExampleGraph_Components() {
	g, err := depgraph.New(
		[]string{"x", "y", "v", "c", "s", "cw", "sw", "wv"},
		[]depgraph.Edge{{"x", "y"}, {"x", "v"}, {"x", "c"}, {"y", "v"}, {"cw", "sw"}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	groups, _ := g.Components([]string{"x", "v", "cw", "wv"})
	fmt.Println(groups)
	// Output:
	// [[cw] [v x] [wv]]
}
