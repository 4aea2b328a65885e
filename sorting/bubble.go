package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Bubble[int])(nil)

// Bubble is a stepping bubble sort.
//
// Cursor i counts completed passes, j is the left element of the next
// adjacent pair. Pass i settles index n−1−i, so the sorted region grows
// from the tail.
type Bubble[T cmp.Ordered] struct {
	base[T]
	i, j int
}

// NewBubble returns a bubble sort stepper over a copy of values.
func NewBubble[T cmp.Ordered](values []T) (*Bubble[T], error) {
	b, err := newBase("bubble", values, stepper.EstimateQuadratic)
	if err != nil {
		return nil, err
	}

	return &Bubble[T]{base: b}, nil
}

// Step compares one adjacent pair, closes a pass, or certifies completion.
func (s *Bubble[T]) Step() {
	if !s.begin() {
		return
	}

	n := len(s.values)
	switch {
	case s.i >= n-1:
		s.finish()
	case s.j < n-s.i-1:
		s.mark(s.j, s.j+1)
		if s.less(s.j+1, s.j) {
			s.swap(s.j, s.j+1)
		}
		s.j++
	default:
		s.sorted.Add(n - 1 - s.i)
		s.mark()
		s.j = 0
		s.i++
	}
}
