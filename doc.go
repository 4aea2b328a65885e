// Package algoflow is a set of resumable, step-by-step algorithm engines
// for visualizing how classic algorithms work, one comparison, swap or
// node visit at a time.
//
// 🚀 What is inside?
//
//		• Steppers: a common contract (Step, Completed, CurrentIndices,
//		  SortedIndices, Metrics) with exact comparison/swap/step counters
//		• Sorting: Bubble, Selection, Insertion, Quick (Lomuto), Heap and
//		  bottom-up Merge as explicit state machines, no recursion
//		• Path-finding: Dijkstra one finalized node per step on random graphs
//		• Driver: frame-paced scheduling with speed slider, batching,
//		  skip ticks and cancellable sessions
//
// ✨ Why steppers?
//
//   - Every Step is a small, well-defined unit of work, so a renderer can
//     draw the exact state between any two operations
//   - The engine never sleeps and never spawns goroutines; pacing belongs
//     to the driver
//   - Deterministic: the same input yields the same step sequence
//
// Packages:
//
//	stepper/   the Stepper contract, metric counters, index sets
//	sequence/  validated, randomly generated input sequences
//	sorting/   the six sort steppers and the algorithm registry
//	pathfind/  small undirected graphs and the Dijkstra stepper
//	driver/    tick scheduling, speed mapping, run sessions
//
// Quick example:
//
//	s, _ := sorting.NewBubble([]int{5, 3, 8, 1})
//	for !s.Completed() {
//		s.Step()
//	}
//	fmt.Println(s.Values(), s.Metrics().Comparisons) // [1 3 5 8] 6
//
// The algoflow command (cmd/algoflow) animates runs in the terminal and
// exports YAML reports, HTML charts and Prometheus metrics.
package algoflow
