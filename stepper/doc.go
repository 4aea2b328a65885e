// Package stepper defines the contract shared by every resumable algorithm
// in algoflow.
//
// A Stepper is an externally driven state machine: each call to Step performs
// exactly one observable unit of work and then returns, leaving the algorithm
// paused with its internal progress exposed for inspection.
//
// Read surface (valid after every Step):
//
//   - Completed:      true once the run is certified finished; never reverts.
//   - CurrentIndices: positions the most recent Step inspected or moved.
//   - SortedIndices:  positions certified as final; the set only grows.
//   - Metrics:        comparisons, swaps, steps taken and an estimated total.
//
// Lifecycle:
//
//   - A stepper is built once from a value snapshot and mutated in place.
//   - Step after completion is a safe no-op (only StepsTaken advances).
//   - There is no Reset: a new run constructs a new stepper.
//
// The package also ships the small building blocks the concrete steppers
// embed: Counter (metrics collection), IndexSet (monotonic sorted region)
// and the closed-form step estimators.
//
// Thread safety:
//
//   - Steppers are single-owner values and are NOT safe for concurrent use.
package stepper
