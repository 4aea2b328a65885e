package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algoflow/sorting"
)

// ExampleNewBubble drives a bubble sort to completion one step at a time.
func ExampleNewBubble() {
	s, err := sorting.NewBubble([]int{5, 3, 8, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !s.Completed() {
		s.Step()
	}
	m := s.Metrics()
	fmt.Println(s.Values(), m.Comparisons, m.Swaps)
	// Output: [1 3 5 8] 6 4
}

// ExampleNew shows the registry constructor and the per-step read surface.
func ExampleNew() {
	s, err := sorting.New(sorting.AlgoMerge, []int{9, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !s.Completed() {
		s.Step()
		fmt.Println(s.CurrentIndices(), s.Values(), s.SortedIndices())
	}
	// Output:
	// [0 1] [9 1] []
	// [0] [9 1] []
	// [0 1] [1 9] [0 1]
	// [] [1 9] [0 1]
}
