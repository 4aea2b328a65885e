// Package stepper defines the Stepper contract, the Metrics snapshot and
// the sentinel errors shared by all algorithm constructors.
package stepper

import (
	"cmp"
	"errors"
)

// ErrInvalidInput is returned by every stepper constructor when the input
// sequence is absent or cannot be totally ordered.
var ErrInvalidInput = errors.New("stepper: invalid input")

// Stepper is the behavioral contract every algorithm state machine satisfies.
//
// Step advances the algorithm by exactly one unit of work. It is a no-op
// once Completed reports true, except that StepsTaken is still incremented.
type Stepper interface {
	// Step performs one unit of work.
	Step()

	// Completed reports whether the run has finished. Monotonic.
	Completed() bool

	// CurrentIndices returns the positions touched by the most recent Step.
	// The slice is a copy and may be empty.
	CurrentIndices() []int

	// SortedIndices returns the certified positions in ascending order.
	// Sort steppers report the full index range once Completed; search
	// steppers report the positions they finalized.
	SortedIndices() []int

	// Metrics returns a snapshot of the run counters.
	Metrics() Metrics
}

// SortStepper is a Stepper over a sequence of ordered values. Values exposes
// the live sequence for drawing; the returned slice is a copy.
type SortStepper[T cmp.Ordered] interface {
	Stepper

	// Values returns a copy of the sequence in its current order.
	Values() []T
}

// Metrics is a point-in-time snapshot of a stepper's counters.
//
// EstimatedTotalSteps is a closed-form heuristic fixed at construction and
// is meant for progress display only; real runs may exceed or undershoot it.
type Metrics struct {
	Comparisons         int `json:"comparisons" yaml:"comparisons"`
	Swaps               int `json:"swaps" yaml:"swaps"`
	StepsTaken          int `json:"steps_taken" yaml:"steps_taken"`
	EstimatedTotalSteps int `json:"estimated_total_steps" yaml:"estimated_total_steps"`
}

// Progress returns StepsTaken/EstimatedTotalSteps clamped to [0,1].
// A zero estimate yields 1, since such runs need no work.
func (m Metrics) Progress() float64 {
	if m.EstimatedTotalSteps <= 0 {
		return 1
	}
	p := float64(m.StepsTaken) / float64(m.EstimatedTotalSteps)
	if p > 1 {
		return 1
	}

	return p
}
