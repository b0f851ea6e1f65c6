package mathx_test

import (
	"testing"

	"github.com/katalvlaran/toolbox/mathx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinMax covers single values, both orders and a longer list.
func TestMinMax(t *testing.T) {
	tests := []struct {
		in     []int
		lo, hi int
	}{
		{[]int{1}, 1, 1},
		{[]int{1, 2}, 1, 2},
		{[]int{2, 1}, 1, 2},
		{[]int{3, 2, 6, 5, 4}, 2, 6},
		{[]int{-4, 0, -9}, -9, 0},
	}
	for _, tc := range tests {
		lo, hi, err := mathx.MinMax(tc.in...)
		require.NoError(t, err, "MinMax(%v)", tc.in)
		assert.Equal(t, tc.lo, lo, "min of %v", tc.in)
		assert.Equal(t, tc.hi, hi, "max of %v", tc.in)
	}

	lo, hi, err := mathx.MinMax("pear", "apple", "plum")
	require.NoError(t, err)
	assert.Equal(t, "apple", lo)
	assert.Equal(t, "plum", hi)
}

// TestMinMax_Empty reports ErrEmpty.
func TestMinMax_Empty(t *testing.T) {
	_, _, err := mathx.MinMax[float64]()
	assert.ErrorIs(t, err, mathx.ErrEmpty)
}

// TestLimit clamps below, inside and above the range.
func TestLimit(t *testing.T) {
	assert.Equal(t, 3, mathx.Limit(1, 3, 7))
	assert.Equal(t, 5, mathx.Limit(5, 3, 7))
	assert.Equal(t, 7, mathx.Limit(9, 3, 7))
	assert.Equal(t, 0.5, mathx.Limit(0.5, 0.0, 1.0))
	assert.Equal(t, 1.0, mathx.Limit(1.5, 0.0, 1.0))
}

// TestQuantity mirrors the ratio and absolute quota rules.
func TestQuantity(t *testing.T) {
	assert.Equal(t, 5, mathx.Quantity(5, 10))
	assert.Equal(t, 1, mathx.Quantity(0.1, 10))
	assert.Equal(t, 3, mathx.Quantity(0.33, 10))
	assert.Equal(t, 9, mathx.Quantity(0.99, 10))
	assert.Equal(t, 1, mathx.Quantity(1.0, 10))
	assert.Equal(t, 1, mathx.Quantity(1, 10))
	assert.Equal(t, 1, mathx.Quantity(1.5, 10))
	assert.Equal(t, 0, mathx.Quantity(-0.2, 10))
	assert.Equal(t, 10, mathx.Quantity(30, 10))
	assert.Equal(t, 4, mathx.Quantity(int8(-4), 10))
	assert.Equal(t, 0, mathx.Quantity(uint(0), 10))
}
