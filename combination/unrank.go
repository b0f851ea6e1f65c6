// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// unrank.go — rank → combination, the inverse of Rank.

package combination

import (
	"fmt"
	"math"
)

// Unrank returns the combination of length ascending integers, each ≥ offset,
// whose rank is rank. Unrank(Rank(c, o), len(c), o) equals the sorted c, and
// Rank(Unrank(r, l, o), o) equals r.
//
// Algorithm (greedy digit extraction):
//  1. For positions i = length … 1, find the largest n with C(n, i) ≤ rank.
//  2. n + offset is the element at position i; subtract C(n, i) from rank.
//  3. The next element is strictly below n.
//
// The search for n is a binary search over the checked binomial, bounded by
// the previous element and by rank+i-1 (C(n, i) ≥ n-i+1 for n ≥ i ≥ 1).
//
// Errors:
//   - ErrInvalidRank if rank < 0.
//   - ErrInvalidDomain if length < 0.
//   - ErrOverflow if the largest element exceeds the int range once shifted
//     by offset.
//
// Complexity: O(length² · log rank) time, O(length) space.
func Unrank(rank, length, offset int) ([]int, error) {
	if rank < 0 {
		return nil, fmt.Errorf("unrank %d: %w", rank, ErrInvalidRank)
	}
	if length < 0 {
		return nil, fmt.Errorf("unrank with length %d: %w", length, ErrInvalidDomain)
	}

	combination := make([]int, length)
	unrankInto(combination, rank)
	if err := shiftBy(combination, offset); err != nil {
		return nil, fmt.Errorf("unrank %d with offset %d: %w", rank, offset, err)
	}

	return combination, nil
}

// unrankInto fills dst with the positions of the combination of len(dst)
// elements ranked at rank. rank must be non-negative.
func unrankInto(dst []int, rank int) {
	limit := math.MaxInt
	for i := len(dst); i >= 1; i-- {
		n, c := largestWithin(rank, i, limit)
		dst[i-1] = n
		rank -= c
		limit = n - 1
	}
}

// shiftBy adds offset to the ascending, non-negative positions in dst.
func shiftBy(dst []int, offset int) error {
	if len(dst) > 0 && offset > 0 && dst[len(dst)-1] > math.MaxInt-offset {
		return ErrOverflow
	}
	for i := range dst {
		dst[i] += offset
	}

	return nil
}

// largestWithin returns the largest n ≤ limit with C(n, k) ≤ rank, together
// with C(n, k). k ≥ 1 and limit ≥ k-1 are required; n = k-1 always
// qualifies since C(k-1, k) = 0.
func largestWithin(rank, k, limit int) (n, c int) {
	lo, hi := k-1, limit
	if rank <= math.MaxInt-k && rank+k-1 < hi {
		hi = rank + k - 1
	}
	for lo < hi {
		mid := lo + (hi-lo)/2 + (hi-lo)%2
		if v, ok := binomial(mid, k); ok && v <= rank {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	c, _ = binomial(lo, k)

	return lo, c
}
