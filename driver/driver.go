package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/algoflow/stepper"
)

// Driver paces one stepper. It is single-use and not safe for concurrent
// use; Session coordinates restarts.
type Driver struct {
	s       stepper.Stepper
	opts    Options
	ticks   int
	steps   int
	observe func(Snapshot) // set by Session, runs before OnTick
}

// New validates the options and returns a Driver for s.
func New(s stepper.Stepper, opts ...Option) (*Driver, error) {
	if s == nil {
		return nil, ErrNilStepper
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Driver{s: s, opts: cfg}, nil
}

// Options returns the effective configuration.
func (d *Driver) Options() Options { return d.opts }

// Tick performs one active tick without waiting: up to StepsPerTick calls to
// Step, stopping early on completion. It returns the resulting snapshot.
//
// Tick is the building block of Run and can be called directly by hosts that
// own their own frame loop.
func (d *Driver) Tick() Snapshot {
	d.ticks++
	for k := 0; k < d.opts.StepsPerTick && !d.s.Completed(); k++ {
		if d.opts.MaxSteps > 0 && d.steps >= d.opts.MaxSteps {
			break
		}
		d.s.Step()
		d.steps++
	}

	snap := Capture(d.s)
	snap.Tick = d.ticks

	return snap
}

// Steps returns the number of Step calls this driver has issued.
func (d *Driver) Steps() int { return d.steps }

// Run ticks at the configured cadence until the stepper completes, ctx is
// cancelled, a hook fails, or the step cap is reached.
//
// Returns nil on completion, ctx.Err() on cancellation, the wrapped hook
// error, or ErrStepLimit.
func (d *Driver) Run(ctx context.Context) error {
	log := d.opts.Logger.With("run", d.opts.Label)
	start := time.Now()

	if d.s.Completed() {
		snap := Capture(d.s)
		if err := d.emit(snap); err != nil {
			return fmt.Errorf("driver: tick 0: %w", err)
		}
		d.opts.OnComplete(snap)
		log.Debug("stepper already complete")

		return nil
	}

	log.Debug("run started",
		"interval", d.opts.Interval,
		"steps_per_tick", d.opts.StepsPerTick,
		"skip_ticks", d.opts.SkipTicks,
	)

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	idle := 0
	for {
		select {
		case <-ctx.Done():
			log.Debug("run cancelled", "steps", d.steps)
			return ctx.Err()
		case <-ticker.C:
		}

		if idle > 0 {
			idle--
			continue
		}
		idle = d.opts.SkipTicks

		snap := d.Tick()
		if err := d.emit(snap); err != nil {
			return fmt.Errorf("driver: tick %d: %w", snap.Tick, err)
		}

		if snap.Completed {
			d.opts.OnComplete(snap)
			log.Info("run completed",
				"steps", snap.Metrics.StepsTaken,
				"comparisons", snap.Metrics.Comparisons,
				"swaps", snap.Metrics.Swaps,
				"elapsed", time.Since(start),
			)

			return nil
		}

		if d.opts.MaxSteps > 0 && d.steps >= d.opts.MaxSteps {
			log.Warn("step limit reached", "max_steps", d.opts.MaxSteps)
			return fmt.Errorf("%w: %d", ErrStepLimit, d.opts.MaxSteps)
		}
	}
}

func (d *Driver) emit(snap Snapshot) error {
	if d.observe != nil {
		d.observe(snap)
	}

	return d.opts.OnTick(snap)
}

// Drain steps s without pacing until it completes. limit caps the number of
// Step calls (0 = no cap). Returns the number of steps issued.
func Drain(s stepper.Stepper, limit int) (int, error) {
	if s == nil {
		return 0, ErrNilStepper
	}

	n := 0
	for !s.Completed() {
		if limit > 0 && n >= limit {
			return n, fmt.Errorf("%w: %d", ErrStepLimit, limit)
		}
		s.Step()
		n++
	}

	return n, nil
}
