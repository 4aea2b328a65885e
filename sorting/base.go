package sorting

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/algoflow/sequence"
	"github.com/katalvlaran/algoflow/stepper"
)

// base carries the state every stepper shares and implements the read half
// of the stepper.SortStepper contract.
type base[T cmp.Ordered] struct {
	values  sequence.Sequence[T] // owned working copy
	counter stepper.Counter
	sorted  stepper.IndexSet
	current []int
	done    bool
}

// newBase validates and clones values. Inputs shorter than two elements are
// completed immediately.
func newBase[T cmp.Ordered](name string, values []T, estimate func(int) int) (base[T], error) {
	if err := sequence.Validate(values); err != nil {
		return base[T]{}, fmt.Errorf("%w: %s: %w", stepper.ErrInvalidInput, name, err)
	}

	n := len(values)
	b := base[T]{
		values:  sequence.Clone(values),
		counter: stepper.NewCounter(estimate(n)),
		sorted:  stepper.NewIndexSet(n),
	}
	if n < 2 {
		b.finish()
	}

	return b, nil
}

// Completed reports whether the run has been certified finished.
func (b *base[T]) Completed() bool { return b.done }

// CurrentIndices returns a copy of the positions touched by the last Step.
func (b *base[T]) CurrentIndices() []int {
	out := make([]int, len(b.current))
	copy(out, b.current)

	return out
}

// SortedIndices returns the certified positions in ascending order.
func (b *base[T]) SortedIndices() []int { return b.sorted.Sorted() }

// Metrics returns a snapshot of the counters.
func (b *base[T]) Metrics() stepper.Metrics { return b.counter.Snapshot() }

// Values returns a copy of the live sequence.
func (b *base[T]) Values() []T {
	out := make([]T, len(b.values))
	copy(out, b.values)

	return out
}

// Len returns the sequence length.
func (b *base[T]) Len() int { return len(b.values) }

// begin ticks the step counter and reports whether work remains.
func (b *base[T]) begin() bool {
	b.counter.Tick()

	return !b.done
}

func (b *base[T]) finish() {
	b.done = true
	b.sorted.Fill()
	b.current = b.current[:0]
}

// mark records the positions touched by the current step.
func (b *base[T]) mark(idx ...int) {
	b.current = append(b.current[:0], idx...)
}

// less compares values[i] < values[j] and counts the comparison.
func (b *base[T]) less(i, j int) bool {
	b.counter.Compare()

	return cmp.Less(b.values[i], b.values[j])
}

// swap exchanges two positions and counts the relocation.
func (b *base[T]) swap(i, j int) {
	b.values.Swap(i, j)
	b.counter.Move()
}
