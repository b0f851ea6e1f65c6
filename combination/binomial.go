// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// binomial.go — checked binomial coefficients.
//
// C(n, k) is built incrementally as C(n-k+j, j) for j = 1..k, each step being
// an exact 128-bit multiply followed by a division. Every partial product is
// itself a binomial coefficient no larger than the result, so an overflow at
// any step means the result does not fit either.

package combination

import (
	"fmt"
	"math"
	"math/bits"
)

// Binomial returns the binomial coefficient C(n, k), the number of ways to
// choose k elements out of n. It returns 0 when k > n.
//
// Errors:
//   - ErrInvalidDomain if n < 0 or k < 0.
//   - ErrOverflow if C(n, k) does not fit in an int.
//
// Complexity: O(min(k, n-k)) time, O(1) space.
func Binomial(n, k int) (int, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("binomial(%d, %d): %w", n, k, ErrInvalidDomain)
	}
	c, ok := binomial(n, k)
	if !ok {
		return 0, fmt.Errorf("binomial(%d, %d): %w", n, k, ErrOverflow)
	}

	return c, nil
}

// Count returns the number of combinations of length elements drawn from a
// domain of n values, i.e. C(n, length).
func Count(n, length int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("count of %d values: %w", n, ErrInvalidDomain)
	}
	if length < 0 {
		return 0, fmt.Errorf("count with length %d: %w", length, ErrInvalidDomain)
	}

	return Binomial(n, length)
}

// binomial computes C(n, k) for non-negative n and k.
// ok is false when the value does not fit in an int.
func binomial(n, k int) (c int, ok bool) {
	if k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}

	var acc uint64 = 1
	for j := 1; j <= k; j++ {
		// C(n-k+j, j) = C(n-k+j-1, j-1) * (n-k+j) / j
		acc, ok = mulDiv(acc, uint64(n-k+j), uint64(j))
		if !ok || acc > math.MaxInt {
			return 0, false
		}
	}

	return int(acc), true
}

// mulDiv returns a*b/d using a 128-bit intermediate product. The division
// must be exact for the callers' purposes; ok is false when the quotient
// does not fit in 64 bits.
func mulDiv(a, b, d uint64) (q uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, false
	}
	q, _ = bits.Div64(hi, lo, d)

	return q, true
}
