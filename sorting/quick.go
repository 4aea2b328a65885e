package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Quick[int])(nil)

// span is a pending inclusive range [left, right] on the work stack.
type span struct {
	left, right int
}

// partition is the scratch record of the partition in progress.
// i is the last index of the "< pivot" region (left−1 when empty) and j the
// next element to scan. The pivot stays at the range's right end until the
// partition is finalized.
type partition[T cmp.Ordered] struct {
	i, j  int
	pivot T
}

// Quick is a stepping quick sort (Lomuto partition, last-element pivot).
//
// The recursion is flattened into an explicit stack of ranges; the top range
// is the one being partitioned. The stack empties exactly when the whole
// sequence is ordered. SortedIndices stays empty until completion.
//
// Equal keys all land on the pivot's right, and an ordered input always picks
// the range maximum as pivot, so constant and already-sorted sequences cost
// n(n−1)/2 comparisons. The log-linear estimate only tracks the average case.
type Quick[T cmp.Ordered] struct {
	base[T]
	stack  []span
	active *partition[T]
}

// NewQuick returns a quick sort stepper over a copy of values.
func NewQuick[T cmp.Ordered](values []T) (*Quick[T], error) {
	b, err := newBase("quick", values, stepper.EstimateLogLinear)
	if err != nil {
		return nil, err
	}

	s := &Quick[T]{base: b}
	if !s.done {
		s.stack = []span{{left: 0, right: len(values) - 1}}
	}

	return s, nil
}

// Pending returns the number of ranges still on the work stack.
func (s *Quick[T]) Pending() int { return len(s.stack) }

// Step performs exactly one of: certify completion, discard a trivial range,
// start a partition, scan one element, or place the pivot and push the two
// sub-ranges.
func (s *Quick[T]) Step() {
	if !s.begin() {
		return
	}

	if len(s.stack) == 0 {
		s.finish()
		return
	}

	top := s.stack[len(s.stack)-1]
	if top.left >= top.right {
		s.stack = s.stack[:len(s.stack)-1]
		s.mark()
		return
	}

	if s.active == nil {
		s.active = &partition[T]{i: top.left - 1, j: top.left, pivot: s.values[top.right]}
		s.mark(top.left, top.right)
		return
	}

	p := s.active
	if p.j < top.right {
		s.counter.Compare()
		if cmp.Less(s.values[p.j], p.pivot) {
			p.i++
			if p.i != p.j {
				s.swap(p.i, p.j)
			}
		}
		s.markScan(top.left, p.i, p.j)
		p.j++
		return
	}

	// Scan exhausted: the pivot goes right after the "< pivot" region.
	pi := p.i + 1
	if pi != top.right {
		s.swap(pi, top.right)
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.stack = append(s.stack,
		span{left: top.left, right: pi - 1},
		span{left: pi + 1, right: top.right},
	)
	s.active = nil
	s.mark(pi)
}

// markScan reports the scan pair (i, j), leaving out i while the
// "< pivot" region is still empty.
func (s *Quick[T]) markScan(left, i, j int) {
	if i < left {
		s.mark(j)
		return
	}
	s.mark(i, j)
}
