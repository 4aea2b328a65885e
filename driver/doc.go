// Package driver paces a stepper.Stepper against wall-clock time.
//
// Steppers have no notion of time or speed; the driver owns cadence. On each
// scheduling tick it invokes Step up to StepsPerTick times, captures a
// Snapshot of the read surface and hands it to the OnTick hook (typically a
// renderer). Ticks can be skipped to slow perceived speed or batched to
// speed it up.
//
// Cancellation is cooperative: cancelling the context simply stops further
// Step calls. Steppers hold no external resources, so no teardown is needed.
//
// Session models the single owner of a visualization: it holds one active
// run at a time and replaces it wholesale on restart. The previous run is
// cancelled and fully drained before the next one starts, so a stepper is
// never advanced from two goroutines.
//
// Options:
//
//	– WithInterval(d):       tick period (default one 60 Hz frame).
//	– WithStepsPerTick(k):   Step calls per active tick (default 1).
//	– WithSkipTicks(k):      idle ticks between active ticks (default 0).
//	– WithSpeed(v):          slider value 1..100 mapped by SpeedToCadence.
//	– WithMaxSteps(k):       safety cap on driver-issued steps (0 = none).
//	– WithOnTick(fn):        per-tick hook; a returned error aborts the run.
//	– WithOnComplete(fn):    called once with the final snapshot.
//	– WithLogger(l):         slog logger for run lifecycle records.
//
// Errors (sentinel):
//
//	– ErrNilStepper       if New is given a nil stepper.
//	– ErrOptionViolation  if an option value is out of range.
//	– ErrStepLimit        if MaxSteps is exhausted before completion.
package driver
