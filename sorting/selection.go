package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Selection[int])(nil)

// Selection is a stepping selection sort.
//
// Pass i scans j over (i, n) keeping minIdx at the smallest value seen, then
// swaps it into position i. The sorted region grows from the head.
// CurrentIndices reports [i, j, minIdx] while scanning.
type Selection[T cmp.Ordered] struct {
	base[T]
	i, j   int
	minIdx int
}

// NewSelection returns a selection sort stepper over a copy of values.
func NewSelection[T cmp.Ordered](values []T) (*Selection[T], error) {
	b, err := newBase("selection", values, stepper.EstimateQuadratic)
	if err != nil {
		return nil, err
	}

	return &Selection[T]{base: b, i: 0, j: 1, minIdx: 0}, nil
}

// Step compares one candidate against the running minimum, closes a pass,
// or certifies completion.
func (s *Selection[T]) Step() {
	if !s.begin() {
		return
	}

	n := len(s.values)
	switch {
	case s.i >= n-1:
		s.finish()
	case s.j < n:
		s.mark(s.i, s.j, s.minIdx)
		if s.less(s.j, s.minIdx) {
			s.minIdx = s.j
		}
		s.j++
	default:
		if s.minIdx != s.i {
			s.swap(s.i, s.minIdx)
		}
		s.mark(s.i, s.minIdx)
		s.sorted.Add(s.i)
		s.i++
		s.minIdx = s.i
		s.j = s.i + 1
	}
}
