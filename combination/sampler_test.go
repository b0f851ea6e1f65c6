package combination_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/toolbox/combination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampler_Deterministic verifies that equal seeds give equal draws.
func TestSampler_Deterministic(t *testing.T) {
	a := combination.NewSampler(combination.WithSeed(42))
	b := combination.NewSampler(combination.WithSeed(42))
	for i := 0; i < 100; i++ {
		ca, err := a.Draw(49, 6, 1)
		require.NoError(t, err)
		cb, err := b.Draw(49, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, ca, cb, "draw %d", i)
	}

	d1 := combination.NewSampler()
	d2 := combination.NewSampler(combination.WithSeed(combination.DefaultSeed))
	r1, err := d1.Rank(50, 3)
	require.NoError(t, err)
	r2, err := d2.Rank(50, 3)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "default sampler uses DefaultSeed")
}

// TestSampler_WithSource draws from a caller-provided source.
func TestSampler_WithSource(t *testing.T) {
	a := combination.NewSampler(combination.WithSource(rand.NewSource(7)))
	b := combination.NewSampler(combination.WithSource(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		ra, err := a.Rank(20, 4)
		require.NoError(t, err)
		rb, err := b.Rank(20, 4)
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}

	assert.Panics(t, func() { combination.WithSource(nil) })
}

// TestSampler_DrawIsValid checks shape and bounds of drawn combinations.
func TestSampler_DrawIsValid(t *testing.T) {
	s := combination.NewSampler(combination.WithSeed(3))
	for i := 0; i < 500; i++ {
		c, err := s.Draw(49, 6, 1)
		require.NoError(t, err)
		require.Len(t, c, 6)
		require.True(t, slices.IsSorted(c))
		require.Len(t, slices.Compact(slices.Clone(c)), 6, "distinct values")
		require.GreaterOrEqual(t, c[0], 1)
		require.LessOrEqual(t, c[5], 49)
	}
}

// TestSampler_Uniform checks that each of the 10 ranks of 2-of-5 is drawn
// roughly equally often.
func TestSampler_Uniform(t *testing.T) {
	s := combination.NewSampler(combination.WithSeed(11))
	counts := make([]int, 10)
	for i := 0; i < 10000; i++ {
		r, err := s.Rank(5, 2)
		require.NoError(t, err)
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, 10)
		counts[r]++
	}
	for r, n := range counts {
		assert.InDelta(t, 1000, n, 200, "rank %d drawn %d times", r, n)
	}
}

// TestDrawFrom maps a random combination onto a domain.
func TestDrawFrom(t *testing.T) {
	s := combination.NewSampler(combination.WithSeed(5))
	values := []string{"a", "b", "c", "d"}

	got, err := combination.DrawFrom[string](s, combination.Slice[string](values), 4)
	require.NoError(t, err)
	assert.Equal(t, values, got, "the only 4-of-4 combination")

	got, err = combination.DrawFrom[string](s, combination.Slice[string](values), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Subset(t, values, got)

	_, err = combination.DrawFrom[int](s, combination.Indexed[int]{Values: []int{1, 2}, Indexes: []int{0}}, 1)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
}

// TestSampler_InvalidInput rejects empty or invalid spaces.
func TestSampler_InvalidInput(t *testing.T) {
	s := combination.NewSampler()

	_, err := s.Rank(5, 0)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
	_, err = s.Rank(0, 2)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
	_, err = s.Rank(3, 4)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
	_, err = s.Rank(-1, 1)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
	_, err = s.Draw(1000, 500, 0)
	assert.ErrorIs(t, err, combination.ErrOverflow)
	_, err = s.Draw(5, 2, math.MaxInt-2)
	assert.ErrorIs(t, err, combination.ErrOverflow)
	_, err = combination.DrawFrom[int](s, nil, 1)
	assert.ErrorIs(t, err, combination.ErrInvalidDomain)
}
