package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Heap[int])(nil)

// heapPhase selects which half of heap sort the stepper is in.
type heapPhase int

const (
	phaseHeapify heapPhase = iota
	phaseSortdown
)

// Heap is a stepping heap sort over a max-heap.
//
// Phase heapify walks the construction index i from n/2−1 down to 0, one
// sift-down per Step. Phase sortdown swaps the root with the boundary j,
// records j as sorted, shrinks the heap and sifts the new root down.
//
// One Step runs an entire sift-down, which may involve several comparisons
// and swaps. Finer granularity would require a resumable sift cursor.
type Heap[T cmp.Ordered] struct {
	base[T]
	phase heapPhase
	i, j  int
}

// NewHeap returns a heap sort stepper over a copy of values.
func NewHeap[T cmp.Ordered](values []T) (*Heap[T], error) {
	b, err := newBase("heap", values, stepper.EstimateLogLinear)
	if err != nil {
		return nil, err
	}

	n := len(values)

	return &Heap[T]{base: b, phase: phaseHeapify, i: n/2 - 1, j: n - 1}, nil
}

// Heapifying reports whether the stepper is still building the heap.
func (s *Heap[T]) Heapifying() bool { return s.phase == phaseHeapify }

// Step runs one heap-construction sift-down, one extraction, or certifies
// completion once the boundary reaches 0.
func (s *Heap[T]) Step() {
	if !s.begin() {
		return
	}

	n := len(s.values)
	switch s.phase {
	case phaseHeapify:
		if end := s.siftDown(n, s.i); end != s.i {
			s.mark(s.i, end)
		} else {
			s.mark(s.i)
		}
		s.i--
		if s.i < 0 {
			s.phase = phaseSortdown
			s.j = n - 1
		}
	case phaseSortdown:
		if s.j <= 0 {
			s.finish()
			return
		}
		s.swap(0, s.j)
		s.sorted.Add(s.j)
		if end := s.siftDown(s.j, 0); end != 0 {
			s.mark(0, end, s.j)
		} else {
			s.mark(0, s.j)
		}
		s.j--
	}
}

// siftDown restores the heap property below root within values[:size] and
// returns the slot the sifted value came to rest in.
func (s *Heap[T]) siftDown(size, root int) int {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < size && s.less(largest, l) {
			largest = l
		}
		if r < size && s.less(largest, r) {
			largest = r
		}
		if largest == root {
			break
		}
		s.swap(root, largest)
		root = largest
	}

	return root
}
