package driver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/algoflow/stepper"
)

// Sentinel errors for driver construction and execution.
var (
	// ErrNilStepper is returned when no stepper is supplied.
	ErrNilStepper = errors.New("driver: stepper is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("driver: invalid option supplied")

	// ErrStepLimit is returned when the step cap is reached first.
	ErrStepLimit = errors.New("driver: step limit reached before completion")
)

// FrameInterval is one frame at 60 Hz, the default tick period.
const FrameInterval = time.Second / 60

// Snapshot is the per-tick read surface handed to renderers.
type Snapshot struct {
	Tick           int             `yaml:"tick"`
	CurrentIndices []int           `yaml:"current_indices"`
	SortedIndices  []int           `yaml:"sorted_indices"`
	Metrics        stepper.Metrics `yaml:"metrics"`
	Completed      bool            `yaml:"completed"`
}

// Capture reads the full read surface of s.
func Capture(s stepper.Stepper) Snapshot {
	return Snapshot{
		CurrentIndices: s.CurrentIndices(),
		SortedIndices:  s.SortedIndices(),
		Metrics:        s.Metrics(),
		Completed:      s.Completed(),
	}
}

// Option configures a Driver. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the pacing parameters and hooks of a Driver.
type Options struct {
	// Interval is the period between scheduling ticks.
	Interval time.Duration

	// StepsPerTick is the number of Step calls per active tick.
	StepsPerTick int

	// SkipTicks idle ticks are inserted after every active tick.
	SkipTicks int

	// MaxSteps caps the steps the driver issues; 0 disables the cap.
	MaxSteps int

	// OnTick is called after every active tick. A non-nil error stops Run.
	OnTick func(Snapshot) error

	// OnComplete is called once when the stepper reports completion.
	OnComplete func(Snapshot)

	// Logger receives run lifecycle records.
	Logger *slog.Logger

	// Label identifies the run in log records (e.g. the algorithm name).
	Label string

	err error
}

// DefaultOptions returns one step per 60 Hz frame, no skipping, no cap and
// no-op hooks, logging to slog.Default().
func DefaultOptions() Options {
	return Options{
		Interval:     FrameInterval,
		StepsPerTick: 1,
		SkipTicks:    0,
		MaxSteps:     0,
		OnTick:       func(Snapshot) error { return nil },
		OnComplete:   func(Snapshot) {},
		Logger:       slog.Default(),
	}
}

// fail records err unless an earlier option already failed.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithInterval sets the tick period; d must be positive.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.fail(fmt.Errorf("%w: interval must be positive (%s)", ErrOptionViolation, d))
			return
		}
		o.Interval = d
	}
}

// WithStepsPerTick sets how many Step calls an active tick issues; k ≥ 1.
func WithStepsPerTick(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.fail(fmt.Errorf("%w: steps per tick must be ≥ 1 (%d)", ErrOptionViolation, k))
			return
		}
		o.StepsPerTick = k
	}
}

// WithSkipTicks inserts k idle ticks after each active tick; k ≥ 0.
func WithSkipTicks(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.fail(fmt.Errorf("%w: skip ticks cannot be negative (%d)", ErrOptionViolation, k))
			return
		}
		o.SkipTicks = k
	}
}

// WithSpeed applies SpeedToCadence(speed) to Interval and StepsPerTick.
func WithSpeed(speed int) Option {
	return func(o *Options) {
		o.Interval, o.StepsPerTick = SpeedToCadence(speed)
	}
}

// WithMaxSteps caps the number of steps issued; 0 disables the cap.
func WithMaxSteps(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.fail(fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, k))
			return
		}
		o.MaxSteps = k
	}
}

// WithOnTick registers the per-tick hook.
func WithOnTick(fn func(Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}

// WithOnComplete registers the completion hook.
func WithOnComplete(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// WithLogger sets the logger for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLabel names the run in log records.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}
