package core_test

import (
	"fmt"

	"github.com/katalvlaran/advent2020/core"
)

// ExampleGraph shows a small containment graph queried in both directions.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("bright white", "shiny gold", 1)
	_, _ = g.AddEdge("muted yellow", "shiny gold", 2)
	_, _ = g.AddEdge("shiny gold", "dark olive", 1)

	parents, _ := g.PredecessorIDs("shiny gold")
	children, _ := g.SuccessorIDs("shiny gold")
	fmt.Println(parents)
	fmt.Println(children)
	fmt.Println(g.VertexCount())

	// Output:
	// [bright white muted yellow]
	// [dark olive]
	// 4
}
