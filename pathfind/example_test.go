// Package pathfind_test shows the stepping Dijkstra search in use.
// Each example is runnable via “go test -run Example”.
package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/pathfind"
)

// ExampleDijkstra_triangle steps a search over a triangle until the target
// is finalized. The direct edge 0–2 (weight 5) loses to the detour via 1.
func ExampleDijkstra_triangle() {
	// 1) Build an undirected graph with three nodes.
	g, _ := pathfind.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	// 2) Prepare the search from 0 toward 2.
	d, err := pathfind.NewDijkstra(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) One Step finalizes one node.
	for !d.Completed() {
		d.Step()
		fmt.Println("visited", d.CurrentIndices(), "frontier", d.Frontier())
	}

	// 4) Read the route and its cost.
	cost, _ := d.Distance(2)
	fmt.Println("path", d.Path(), "cost", cost)
	// Output:
	// visited [0] frontier [1 2]
	// visited [1] frontier [2]
	// visited [2] frontier []
	// path [0 1 2] cost 3
}

// ExampleRandom drains a search on a seeded random graph. Complete graphs
// (p=1) always connect source and target.
func ExampleRandom() {
	g, err := pathfind.Random(6, 1, pathfind.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := pathfind.NewDijkstra(g, 0, 5)
	if _, err := driver.Drain(d, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges", g.EdgeCount(), "reached", d.Reached())
	// Output: edges 15 reached true
}
