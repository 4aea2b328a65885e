package stepper

// Counter collects the per-run metrics of a stepper. It is embedded by value
// in each concrete stepper and never shared.
//
// Accounting rules:
//   - Compare: once per pairwise comparison of two values.
//   - Move:    once per relocation (swap, shift, or block copy-back).
//   - Tick:    once per Step call, including no-op calls after completion.
type Counter struct {
	comparisons int
	swaps       int
	steps       int
	estimate    int
}

// NewCounter returns a Counter carrying the given step estimate.
func NewCounter(estimate int) Counter {
	if estimate < 0 {
		estimate = 0
	}

	return Counter{estimate: estimate}
}

// Compare records one comparison.
func (c *Counter) Compare() { c.comparisons++ }

// Move records one value relocation.
func (c *Counter) Move() { c.swaps++ }

// Tick records one Step invocation.
func (c *Counter) Tick() { c.steps++ }

// Snapshot returns the current counters as a Metrics value.
func (c *Counter) Snapshot() Metrics {
	return Metrics{
		Comparisons:         c.comparisons,
		Swaps:               c.swaps,
		StepsTaken:          c.steps,
		EstimatedTotalSteps: c.estimate,
	}
}
