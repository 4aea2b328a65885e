package sequence

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for sequence validation and generation.
var (
	// ErrNilSequence indicates that no sequence was supplied at all.
	// An empty, non-nil sequence is valid.
	ErrNilSequence = errors.New("sequence: sequence is nil")

	// ErrUnordered indicates a value that does not participate in a total
	// order (NaN), so no sorted permutation is defined.
	ErrUnordered = errors.New("sequence: value has no total order")

	// ErrBadSize indicates a negative length request in Random.
	ErrBadSize = errors.New("sequence: size must be non-negative")

	// ErrBadRange indicates an inverted value range or one too wide to
	// draw from (hi−lo+1 overflows int).
	ErrBadRange = errors.New("sequence: invalid value range")
)

// Sequence is an ordered, mutable list of orderable values.
type Sequence[T cmp.Ordered] []T

// Validate checks the construction preconditions of a stepper input.
//
// Returns ErrNilSequence for a nil slice and ErrUnordered (with the offending
// position) for NaN. Complexity: O(n).
func Validate[T cmp.Ordered](values []T) error {
	if values == nil {
		return ErrNilSequence
	}
	for i, v := range values {
		// NaN is the only cmp.Ordered value not equal to itself.
		if v != v {
			return fmt.Errorf("%w: index %d", ErrUnordered, i)
		}
	}

	return nil
}

// Clone returns an independent copy of values. Clone(nil) returns nil.
func Clone[T cmp.Ordered](values []T) Sequence[T] {
	if values == nil {
		return nil
	}
	out := make(Sequence[T], len(values))
	copy(out, values)

	return out
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int { return len(s) }

// Less reports whether s[i] < s[j].
func (s Sequence[T]) Less(i, j int) bool { return cmp.Less(s[i], s[j]) }

// Swap exchanges s[i] and s[j].
func (s Sequence[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// IsSorted reports whether s is in non-decreasing order.
func (s Sequence[T]) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
