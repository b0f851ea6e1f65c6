package mathx

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty indicates that MinMax received no values.
var ErrEmpty = errors.New("mathx: no values")

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MinMax returns the smallest and the largest of values.
// Returns ErrEmpty when values is empty.
//
// Complexity: O(n).
func MinMax[T cmp.Ordered](values ...T) (lo, hi T, err error) {
	if len(values) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// Limit clamps value into [lo, hi]. lo wins when lo > hi.
func Limit[T constraints.Ordered](value, lo, hi T) T {
	return max(lo, min(value, hi))
}

// Quantity applies quota to total.
//
// A quota strictly between 0 and 1 is a ratio: the result is total·quota
// rounded down. Any other quota is an absolute count: its integer part, taken
// in absolute value, capped by total.
func Quantity[Q Number](quota Q, total int) int {
	q := float64(quota)
	if q > 0 && q < 1 {
		return int(float64(total) * q)
	}

	n := int(q)
	if n < 0 {
		n = -n
	}

	return min(n, total)
}
