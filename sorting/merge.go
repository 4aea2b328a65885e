package sorting

import (
	"cmp"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.SortStepper[int] = (*Merge[int])(nil)

// mergeTask merges the sorted blocks [left, mid] and [mid+1, right].
// i and j are the read cursors of the two blocks, k the write cursor into
// aux, which holds the merged range until it is copied back.
type mergeTask[T cmp.Ordered] struct {
	left, mid, right int
	i, j, k          int
	aux              []T
}

// Merge is a stepping bottom-up merge sort.
//
// All merge tasks are enumerated at construction for block sizes 1, 2, 4, …
// and stored in reverse so that popping from the end yields every block's
// sub-blocks before the block itself.
type Merge[T cmp.Ordered] struct {
	base[T]
	tasks  []*mergeTask[T]
	active *mergeTask[T]
}

// NewMerge returns a merge sort stepper over a copy of values.
func NewMerge[T cmp.Ordered](values []T) (*Merge[T], error) {
	b, err := newBase("merge", values, stepper.EstimateLogLinear)
	if err != nil {
		return nil, err
	}

	s := &Merge[T]{base: b}
	if !s.done {
		s.tasks = buildMergeTasks[T](len(values))
	}

	return s, nil
}

// buildMergeTasks enumerates (left, mid, right) triples bottom-up and returns
// them in pop order. Complexity: O(n) tasks.
func buildMergeTasks[T cmp.Ordered](n int) []*mergeTask[T] {
	var tasks []*mergeTask[T]
	for size := 1; size < n; size *= 2 {
		for left := 0; left < n-size; left += 2 * size {
			mid := left + size - 1
			right := min(left+2*size-1, n-1)
			tasks = append(tasks, &mergeTask[T]{
				left: left, mid: mid, right: right,
				i: left, j: mid + 1, k: 0,
			})
		}
	}
	for a, b := 0, len(tasks)-1; a < b; a, b = a+1, b-1 {
		tasks[a], tasks[b] = tasks[b], tasks[a]
	}

	return tasks
}

// Pending returns the number of merge tasks not yet started.
func (s *Merge[T]) Pending() int { return len(s.tasks) }

// Step places one element into the active task's buffer, copies a finished
// task back, or certifies completion.
func (s *Merge[T]) Step() {
	if !s.begin() {
		return
	}

	if s.active == nil {
		if len(s.tasks) == 0 {
			s.finish()
			return
		}
		s.active = s.tasks[len(s.tasks)-1]
		s.tasks = s.tasks[:len(s.tasks)-1]
		s.active.aux = make([]T, s.active.right-s.active.left+1)
	}

	m := s.active
	switch {
	case m.i <= m.mid && m.j <= m.right:
		s.mark(m.i, m.j)
		// Ties take the left block, keeping the sort stable.
		if s.less(m.j, m.i) {
			m.aux[m.k] = s.values[m.j]
			m.j++
		} else {
			m.aux[m.k] = s.values[m.i]
			m.i++
		}
		m.k++
	case m.i <= m.mid:
		s.mark(m.i)
		m.aux[m.k] = s.values[m.i]
		m.i++
		m.k++
	case m.j <= m.right:
		s.mark(m.j)
		m.aux[m.k] = s.values[m.j]
		m.j++
		m.k++
	default:
		copy(s.values[m.left:m.right+1], m.aux)
		s.counter.Move()
		s.sorted.AddRange(m.left, m.right)
		s.mark(m.left, m.right)
		s.active = nil
	}
}
