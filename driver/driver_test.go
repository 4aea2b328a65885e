package driver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/sorting"
	"github.com/katalvlaran/algoflow/stepper"
)

// endless never completes; it counts Step calls.
type endless struct{ steps int }

func (e *endless) Step()                    { e.steps++ }
func (e *endless) Completed() bool          { return false }
func (e *endless) CurrentIndices() []int    { return nil }
func (e *endless) SortedIndices() []int     { return nil }
func (e *endless) Metrics() stepper.Metrics { return stepper.Metrics{StepsTaken: e.steps} }

// DriverSuite exercises pacing, hooks and termination paths of Driver.
type DriverSuite struct {
	suite.Suite
}

func (s *DriverSuite) bubble(values ...int) *sorting.Bubble[int] {
	b, err := sorting.NewBubble(values)
	s.Require().NoError(err)

	return b
}

func (s *DriverSuite) TestNew_Validation() {
	_, err := driver.New(nil)
	s.Require().ErrorIs(err, driver.ErrNilStepper)

	for name, opt := range map[string]driver.Option{
		"interval": driver.WithInterval(0),
		"batch":    driver.WithStepsPerTick(0),
		"skip":     driver.WithSkipTicks(-1),
		"cap":      driver.WithMaxSteps(-1),
	} {
		_, err = driver.New(s.bubble(2, 1), opt)
		s.Require().ErrorIs(err, driver.ErrOptionViolation, name)
	}
}

func (s *DriverSuite) TestNew_FirstViolationReported() {
	_, err := driver.New(s.bubble(2, 1),
		driver.WithInterval(-time.Second),
		driver.WithStepsPerTick(0),
		driver.WithMaxSteps(-1),
	)
	s.Require().ErrorIs(err, driver.ErrOptionViolation)
	s.Contains(err.Error(), "interval")
	s.NotContains(err.Error(), "MaxSteps")
}

func (s *DriverSuite) TestRun_Completes() {
	b := s.bubble(5, 3, 8, 1)
	var ticks []driver.Snapshot
	completed := 0

	d, err := driver.New(b,
		driver.WithInterval(time.Millisecond),
		driver.WithOnTick(func(snap driver.Snapshot) error {
			ticks = append(ticks, snap)
			return nil
		}),
		driver.WithOnComplete(func(driver.Snapshot) { completed++ }),
	)
	s.Require().NoError(err)
	s.Require().NoError(d.Run(context.Background()))

	s.Equal(1, completed)
	s.Len(ticks, 10, "one step per tick")
	s.True(ticks[len(ticks)-1].Completed)
	s.Equal([]int{0, 1, 2, 3}, ticks[len(ticks)-1].SortedIndices)
	for i, snap := range ticks {
		s.Equal(i+1, snap.Tick)
	}
}

func (s *DriverSuite) TestRun_BatchesSteps() {
	b := s.bubble(5, 3, 8, 1)
	ticks := 0
	d, err := driver.New(b,
		driver.WithInterval(time.Millisecond),
		driver.WithStepsPerTick(4),
		driver.WithSkipTicks(1),
		driver.WithOnTick(func(driver.Snapshot) error { ticks++; return nil }),
	)
	s.Require().NoError(err)
	s.Require().NoError(d.Run(context.Background()))

	// 10 steps at 4 per tick, stopping early on completion.
	s.Equal(3, ticks)
	s.Equal(10, d.Steps())
}

func (s *DriverSuite) TestRun_Cancelled() {
	b := s.bubble(5, 3, 8, 1)
	d, err := driver.New(b, driver.WithInterval(time.Hour))
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Require().ErrorIs(d.Run(ctx), context.Canceled)
	s.False(b.Completed())
	s.Zero(d.Steps())
}

func (s *DriverSuite) TestRun_HookErrorAborts() {
	boom := errors.New("renderer gone")
	d, err := driver.New(s.bubble(3, 2, 1),
		driver.WithInterval(time.Millisecond),
		driver.WithOnTick(func(snap driver.Snapshot) error {
			if snap.Tick == 2 {
				return boom
			}
			return nil
		}),
	)
	s.Require().NoError(err)

	err = d.Run(context.Background())
	s.Require().ErrorIs(err, boom)
	s.Equal(2, d.Steps())
}

func (s *DriverSuite) TestRun_StepLimit() {
	e := &endless{}
	d, err := driver.New(e,
		driver.WithInterval(time.Millisecond),
		driver.WithStepsPerTick(3),
		driver.WithMaxSteps(7),
	)
	s.Require().NoError(err)

	s.Require().ErrorIs(d.Run(context.Background()), driver.ErrStepLimit)
	s.Equal(7, e.steps)
}

func (s *DriverSuite) TestRun_AlreadyComplete() {
	b := s.bubble(1)
	completed := false
	d, err := driver.New(b,
		driver.WithInterval(time.Hour),
		driver.WithOnComplete(func(snap driver.Snapshot) { completed = snap.Completed }),
	)
	s.Require().NoError(err)
	s.Require().NoError(d.Run(context.Background()))
	s.True(completed)
}

func (s *DriverSuite) TestTick_Manual() {
	b := s.bubble(2, 1)
	d, err := driver.New(b, driver.WithStepsPerTick(2))
	s.Require().NoError(err)

	snap := d.Tick()
	s.Equal(1, snap.Tick)
	s.Equal(2, snap.Metrics.StepsTaken)
	s.False(snap.Completed)

	snap = d.Tick()
	s.True(snap.Completed)
	s.Equal(3, d.Steps())
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func TestDrain(t *testing.T) {
	q, err := sorting.NewQuick([]int{3, 1, 2})
	require.NoError(t, err)

	n, err := driver.Drain(q, 0)
	require.NoError(t, err)
	assert.Equal(t, n, q.Metrics().StepsTaken)
	assert.True(t, q.Completed())

	n, err = driver.Drain(&endless{}, 5)
	require.ErrorIs(t, err, driver.ErrStepLimit)
	assert.Equal(t, 5, n)

	_, err = driver.Drain(nil, 0)
	require.ErrorIs(t, err, driver.ErrNilStepper)
}

func TestSpeedToCadence(t *testing.T) {
	tests := []struct {
		speed    int
		interval time.Duration
		batch    int
	}{
		{-5, 50 * driver.FrameInterval, 1},
		{1, 50 * driver.FrameInterval, 1},
		{26, 25 * driver.FrameInterval, 1},
		{50, driver.FrameInterval, 1},
		{51, driver.FrameInterval, 2},
		{100, driver.FrameInterval, 51},
		{500, driver.FrameInterval, 51},
	}
	for _, tt := range tests {
		interval, batch := driver.SpeedToCadence(tt.speed)
		assert.Equal(t, tt.interval, interval, "speed %d", tt.speed)
		assert.Equal(t, tt.batch, batch, "speed %d", tt.speed)
	}

	d, err := driver.New(&endless{}, driver.WithSpeed(75))
	require.NoError(t, err)
	assert.Equal(t, 26, d.Options().StepsPerTick)
}
