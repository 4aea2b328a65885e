package pathfind

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrBadWeightRange indicates a weight range that is negative, inverted or
// ends at math.MaxInt64 (the Unreachable sentinel).
var ErrBadWeightRange = errors.New("pathfind: invalid weight range")

// Defaults reproduce the classic demo: eight nodes, 40% edge density,
// weights 1..9, positions inside a 100..500 square.
const (
	DefaultNodes       = 8
	DefaultProbability = 0.4
	DefaultMinWeight   = int64(1)
	DefaultMaxWeight   = int64(9)

	defaultMinCoord = 100.0
	defaultMaxCoord = 500.0
)

// Option customizes Random.
type Option func(*randomConfig)

type randomConfig struct {
	rng        *rand.Rand
	minW, maxW int64
	err        error
}

// WithSeed makes Random reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pathfind: WithRand(nil)")
	}

	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithWeightRange sets the inclusive weight range. Unless
// 0 ≤ lo ≤ hi < math.MaxInt64, Random fails with ErrBadWeightRange.
func WithWeightRange(lo, hi int64) Option {
	return func(c *randomConfig) {
		if lo < 0 || lo > hi || hi == math.MaxInt64 {
			if c.err == nil {
				c.err = fmt.Errorf("%w: [%d, %d]", ErrBadWeightRange, lo, hi)
			}
			return
		}
		c.minW, c.maxW = lo, hi
	}
}

// Random samples a graph over n nodes where each unordered pair is
// connected with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Positions are drawn first (node order), then pairs are tried in
//     (i asc, j asc) order; the weight is drawn only for included pairs.
//
// Complexity: O(n²) trials.
func Random(n int, p float64, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%.6f", ErrInvalidProbability, p)
	}

	cfg := randomConfig{minW: DefaultMinWeight, maxW: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng := cfg.rng

	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	span := defaultMaxCoord - defaultMinCoord
	for i := 0; i < n; i++ {
		g.nodes[i].X = defaultMinCoord + rng.Float64()*span
		g.nodes[i].Y = defaultMinCoord + rng.Float64()*span
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			w := cfg.minW + rng.Int63n(cfg.maxW-cfg.minW+1)
			if err := g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("pathfind: Random: AddEdge(%d—%d, w=%d): %w", i, j, w, err)
			}
		}
	}

	return g, nil
}
