package sequence_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoflow/sequence"
)

func TestValidate(t *testing.T) {
	require.ErrorIs(t, sequence.Validate[int](nil), sequence.ErrNilSequence)
	require.NoError(t, sequence.Validate([]int{}))
	require.NoError(t, sequence.Validate([]string{"b", "a"}))
	require.NoError(t, sequence.Validate([]float64{math.Inf(-1), 0, math.Inf(1)}))

	err := sequence.Validate([]float64{1, 2, math.NaN()})
	require.ErrorIs(t, err, sequence.ErrUnordered)
	assert.Contains(t, err.Error(), "index 2")
}

func TestClone(t *testing.T) {
	assert.Nil(t, sequence.Clone[int](nil))

	src := []int{3, 1, 2}
	c := sequence.Clone(src)
	c[0] = 9
	assert.Equal(t, []int{3, 1, 2}, src)
	assert.NotNil(t, sequence.Clone([]int{}))
}

func TestSequence_IsSorted(t *testing.T) {
	assert.True(t, sequence.Sequence[int]{}.IsSorted())
	assert.True(t, sequence.Sequence[int]{1, 1, 2}.IsSorted())
	assert.False(t, sequence.Sequence[int]{2, 1}.IsSorted())

	s := sequence.Sequence[int]{2, 1}
	assert.True(t, s.Less(1, 0))
	s.Swap(0, 1)
	assert.True(t, s.IsSorted())
	assert.Equal(t, 2, s.Len())
}

func TestRandom_Defaults(t *testing.T) {
	s, err := sequence.Random(sequence.DefaultSize, sequence.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, s, sequence.DefaultSize)
	for _, v := range s {
		assert.GreaterOrEqual(t, v, sequence.DefaultMin)
		assert.LessOrEqual(t, v, sequence.DefaultMax)
	}
}

func TestRandom_Reproducible(t *testing.T) {
	a, err := sequence.Random(20, sequence.WithSeed(99), sequence.WithRange(-5, 5))
	require.NoError(t, err)
	b, err := sequence.Random(20, sequence.WithRand(rand.New(rand.NewSource(99))), sequence.WithRange(-5, 5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandom_Edges(t *testing.T) {
	s, err := sequence.Random(0)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.NotNil(t, s)

	_, err = sequence.Random(-1)
	require.ErrorIs(t, err, sequence.ErrBadSize)

	one, err := sequence.Random(3, sequence.WithRange(4, 4))
	require.NoError(t, err)
	assert.Equal(t, sequence.Sequence[int]{4, 4, 4}, one)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { sequence.WithRand(nil) })
}

func TestRandom_BadRange(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"inverted", 2, 1},
		{"full non-negative width", 0, math.MaxInt},
		{"full int width", math.MinInt, math.MaxInt},
		{"negative low overflows", -1, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, sequence.CheckRange(tc.lo, tc.hi), sequence.ErrBadRange)

			_, err := sequence.Random(5, sequence.WithRange(tc.lo, tc.hi))
			require.ErrorIs(t, err, sequence.ErrBadRange)
		})
	}
}

func TestRandom_WidestRange(t *testing.T) {
	require.NoError(t, sequence.CheckRange(0, math.MaxInt-1))
	require.NoError(t, sequence.CheckRange(math.MinInt+1, -1))
	require.ErrorIs(t, sequence.CheckRange(math.MinInt, -1), sequence.ErrBadRange)

	values, err := sequence.Random(8, sequence.WithSeed(3), sequence.WithRange(1, math.MaxInt))
	require.NoError(t, err)
	for _, v := range values {
		assert.Positive(t, v)
	}
}
