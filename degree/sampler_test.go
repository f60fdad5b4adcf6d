package degree

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confgraph/randsrc"
)

func TestSample_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		size, maxDegree int
	}{
		{"zero size", 0, 3},
		{"negative size", -4, 3},
		{"zero maxDegree", 5, 0},
		{"negative maxDegree", 5, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := Sample(tc.size, tc.maxDegree, WithSeed(1))
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, s.Len(), "no partial sequence on error")
		})
	}
}

func TestNewSampler_BadDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{"zero shape", []Option{WithShape(0)}},
		{"negative shape", []Option{WithShape(-1)}},
		{"NaN shape", []Option{WithShape(math.NaN())}},
		{"zero scale", []Option{WithScale(0)}},
		{"infinite scale", []Option{WithScale(math.Inf(1))}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewSampler(tc.opts...)
			require.ErrorIs(t, err, ErrBadDistribution)
			assert.Nil(t, s)

			_, err = Sample(3, 3, tc.opts...)
			assert.True(t, errors.Is(err, ErrBadDistribution))
		})
	}
}

func TestNewSampler_Defaults(t *testing.T) {
	t.Parallel()

	s, err := NewSampler()
	require.NoError(t, err)
	assert.Equal(t, DefaultShape, s.Shape())
	assert.Equal(t, DefaultScale, s.Scale())
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		g    float64
		max  int
		want int
	}{
		{0.0, 3, 1},
		{0.99, 3, 1},
		{1.0, 3, 2},
		{2.5, 3, 3},
		{3.0, 3, 1},
		{10.7, 3, 2},
		{10.7, 1, 1},
		{10.7, 100, 11},
		{1e20, 3, 2},            // 10^20 ≡ 1 (mod 3)
		{math.Exp2(63), 3, 3},   // 2^63 ≡ 2 (mod 3), one past MaxInt64
		{math.MaxFloat64, 3, 3}, // (2^53-1)·2^971 ≡ 1·2 (mod 3)
		{math.MaxFloat64, 1, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Fold(tc.g, tc.max), "Fold(%v, %d)", tc.g, tc.max)
	}
}

func TestSample_HugeScaleStaysInBounds(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{1e20, 1e300} {
		seq, err := Sample(64, 3, WithSeed(1), WithScale(scale))
		require.NoError(t, err, "scale=%g", scale)
		require.True(t, seq.Even())
		for i, v := range seq.Values() {
			hi := 3
			if i == seq.Len()-1 {
				hi = 4
			}
			assert.GreaterOrEqual(t, v, 1, "scale=%g i=%d", scale, i)
			assert.LessOrEqual(t, v, hi, "scale=%g i=%d", scale, i)
		}
	}
}

func TestCorrectParity_ScenarioFromSixNodes(t *testing.T) {
	t.Parallel()

	vals := []int{2, 3, 1, 2, 3, 2} // sum 13
	require.True(t, CorrectParity(vals))
	assert.Equal(t, []int{2, 3, 1, 2, 3, 3}, vals)

	// already even: a second pass must not touch anything
	require.False(t, CorrectParity(vals))
	assert.Equal(t, []int{2, 3, 1, 2, 3, 3}, vals)

	assert.False(t, CorrectParity(nil))
}

func TestSample_MaxDegreeOneAdjustsOnce(t *testing.T) {
	t.Parallel()

	even, err := Sample(4, 1, WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, even.Values())
	assert.False(t, even.ParityCorrected())

	odd, err := Sample(3, 1, WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, odd.Values())
	assert.True(t, odd.ParityCorrected())
	assert.True(t, odd.Even())
}

func TestSample_SizeOne(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 50; seed++ {
		s, err := Sample(1, 5, WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		assert.True(t, s.Even())
		assert.Contains(t, []int{2, 4, 6}, s.At(0))
	}
}

func TestSample_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := Sample(64, 8, WithSeed(99))
	require.NoError(t, err)
	b, err := Sample(64, 8, WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())

	c, err := Sample(64, 8, WithSeedSource(randsrc.Fixed(99)))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), c.Values(), "WithSeed and a fixed seed source share the degree stream")

	r := randsrc.New(99, randsrc.StreamDegrees)
	d, err := Sample(64, 8, WithRand(r))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), d.Values())
}

func TestSample_SuccessiveCallsConsumeStream(t *testing.T) {
	t.Parallel()

	s, err := NewSampler(WithSeed(5))
	require.NoError(t, err)
	a, err := s.Sample(32, 20)
	require.NoError(t, err)
	b, err := s.Sample(32, 20)
	require.NoError(t, err)
	assert.NotEqual(t, a.Values(), b.Values())
}

func TestSample_GammaMean(t *testing.T) {
	t.Parallel()

	// With a large bound the fold is the identity on floor(g)+1, so the mean
	// sits near alpha*beta + 0.5.
	const n = 20000
	s, err := Sample(n, 1000, WithSeed(2024))
	require.NoError(t, err)
	mean := float64(s.Sum()) / n
	assert.InDelta(t, DefaultShape*DefaultScale+0.5, mean, 0.3)

	scaled, err := Sample(n, 1000, WithSeed(2024), WithShape(4), WithScale(2.5))
	require.NoError(t, err)
	assert.InDelta(t, 4*2.5+0.5, float64(scaled.Sum())/n, 0.3)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithSeedSource(nil) })
}
