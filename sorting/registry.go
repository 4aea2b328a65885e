package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoflow/stepper"
)

// ErrUnknownAlgorithm is returned by Parse and New for an unrecognized name.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm names one of the six stepping sorts.
type Algorithm string

// Supported algorithms, in the order the visualizer lists them.
const (
	AlgoBubble    Algorithm = "bubble"
	AlgoMerge     Algorithm = "merge"
	AlgoQuick     Algorithm = "quick"
	AlgoHeap      Algorithm = "heap"
	AlgoInsertion Algorithm = "insertion"
	AlgoSelection Algorithm = "selection"
)

var algorithms = []Algorithm{AlgoBubble, AlgoMerge, AlgoQuick, AlgoHeap, AlgoInsertion, AlgoSelection}

// All returns every supported algorithm.
func All() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// Title returns the display name, e.g. "Bubble Sort".
func (a Algorithm) Title() string {
	if a == "" {
		return ""
	}

	return strings.ToUpper(string(a[:1])) + string(a[1:]) + " Sort"
}

// Estimate returns the estimated total steps for an input of length n.
func (a Algorithm) Estimate(n int) int {
	switch a {
	case AlgoBubble, AlgoSelection, AlgoInsertion:
		return stepper.EstimateQuadratic(n)
	default:
		return stepper.EstimateLogLinear(n)
	}
}

// Parse resolves a user-supplied name. It accepts the short name ("quick"),
// the display name ("Quick Sort") and dashed or underscored variants
// ("quick-sort", "quick_sort"), case-insensitively.
func Parse(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	key = strings.TrimSpace(strings.TrimSuffix(key, "sort"))
	for _, a := range algorithms {
		if string(a) == key {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New constructs the stepper for algo over a copy of values.
func New[T cmp.Ordered](algo Algorithm, values []T) (stepper.SortStepper[T], error) {
	var (
		s   stepper.SortStepper[T]
		err error
	)
	switch algo {
	case AlgoBubble:
		s, err = unwrap[T](NewBubble(values))
	case AlgoSelection:
		s, err = unwrap[T](NewSelection(values))
	case AlgoInsertion:
		s, err = unwrap[T](NewInsertion(values))
	case AlgoQuick:
		s, err = unwrap[T](NewQuick(values))
	case AlgoHeap:
		s, err = unwrap[T](NewHeap(values))
	case AlgoMerge:
		s, err = unwrap[T](NewMerge(values))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// unwrap converts a typed constructor result into the interface, keeping a
// failed construction from leaking a typed nil.
func unwrap[T cmp.Ordered, S stepper.SortStepper[T]](s S, err error) (stepper.SortStepper[T], error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}
