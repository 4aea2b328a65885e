package sequence

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Defaults mirror the bar-chart canvas the visualizer draws into:
// 50 bars with heights between 10 and 350 pixels.
const (
	DefaultSize = 50
	DefaultMin  = 10
	DefaultMax  = 350
)

// Option customizes Random by mutating a generatorConfig.
type Option func(*generatorConfig)

type generatorConfig struct {
	rng      *rand.Rand
	min, max int
	err      error
}

// WithSeed makes Random reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}

	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithRange sets the inclusive value range [lo, hi]. An invalid range (see
// CheckRange) is recorded and returned by Random as ErrBadRange.
func WithRange(lo, hi int) Option {
	return func(c *generatorConfig) {
		if err := CheckRange(lo, hi); err != nil {
			if c.err == nil {
				c.err = err
			}
			return
		}
		c.min, c.max = lo, hi
	}
}

// CheckRange reports whether [lo, hi] is a usable inclusive range: lo ≤ hi
// and its width hi−lo+1 fits in an int.
func CheckRange(lo, hi int) error {
	switch {
	case lo > hi:
		return fmt.Errorf("%w: %d > %d", ErrBadRange, lo, hi)
	case lo < 0 && hi > math.MaxInt+lo:
		return fmt.Errorf("%w: [%d, %d] is too wide", ErrBadRange, lo, hi)
	case hi-lo == math.MaxInt:
		return fmt.Errorf("%w: [%d, %d] is too wide", ErrBadRange, lo, hi)
	}

	return nil
}

// Random returns n values drawn uniformly from the configured range.
//
// Without WithSeed or WithRand the generator is seeded from the clock, so
// every call produces a fresh snapshot. Complexity: O(n).
func Random(n int, opts ...Option) (Sequence[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	cfg := generatorConfig{min: DefaultMin, max: DefaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	span := cfg.max - cfg.min + 1
	out := make(Sequence[int], n)
	for i := range out {
		out[i] = cfg.min + cfg.rng.Intn(span)
	}

	return out, nil
}
