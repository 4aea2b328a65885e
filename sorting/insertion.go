package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Insertion[int])(nil)

// Insertion is a stepping insertion sort.
//
// Cursor i is the element being inserted and j its current position. The
// key always lives at values[j]: moving it one slot toward the front is a
// swap with its left neighbour, so the sequence is a permutation of the
// input after every step. The ordered prefix [0, i) is reported as sorted.
type Insertion[T cmp.Ordered] struct {
	base[T]
	i, j int
}

// NewInsertion returns an insertion sort stepper over a copy of values.
func NewInsertion[T cmp.Ordered](values []T) (*Insertion[T], error) {
	b, err := newBase("insertion", values, stepper.EstimateQuadratic)
	if err != nil {
		return nil, err
	}

	s := &Insertion[T]{base: b, i: 1, j: 1}
	if !s.done {
		s.sorted.Add(0)
	}

	return s, nil
}

// Step compares the key with its left neighbour (swapping when smaller),
// closes the insertion, or certifies completion.
func (s *Insertion[T]) Step() {
	if !s.begin() {
		return
	}

	n := len(s.values)
	if s.i >= n {
		s.finish()
		return
	}

	if s.j > 0 {
		s.mark(s.j-1, s.j)
		if s.less(s.j, s.j-1) {
			s.swap(s.j-1, s.j)
			s.j--
			return
		}
	} else {
		s.mark(s.j)
	}

	// Key is in place: the prefix now covers [0, i].
	s.sorted.Add(s.i)
	s.i++
	s.j = s.i
}
