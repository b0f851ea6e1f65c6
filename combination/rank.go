// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// rank.go — combination → rank under the combinatorial number system.

package combination

import (
	"fmt"
	"math"
	"slices"
)

// Rank returns the 0-based lexicographic rank of combination among all
// combinations of the same length built from integers ≥ offset.
//
// The input does not need to be sorted; a sorted copy is ranked and the
// caller's slice is left untouched. For the sorted, offset-normalized
// combination c[0] < c[1] < … < c[k-1]:
//
//	rank = Σ C(c[i], i+1)
//
// The empty combination has rank 0.
//
// Errors:
//   - ErrInvalidValue if an element is below offset or appears twice.
//   - ErrOverflow if the rank, or an element shifted by offset, does not fit
//     in an int.
//
// Complexity: O(k log k + k²) time, O(k) space.
func Rank(combination []int, offset int) (int, error) {
	sorted := slices.Clone(combination)
	slices.Sort(sorted)

	rank := 0
	for i, v := range sorted {
		if v < offset {
			return 0, fmt.Errorf("rank: element %d below offset %d: %w", v, offset, ErrInvalidValue)
		}
		if i > 0 && v == sorted[i-1] {
			return 0, fmt.Errorf("rank: duplicate element %d: %w", v, ErrInvalidValue)
		}
		if offset < 0 && v > math.MaxInt+offset {
			return 0, fmt.Errorf("rank: element %d with offset %d: %w", v, offset, ErrOverflow)
		}

		c, ok := binomial(v-offset, i+1)
		if !ok || rank > math.MaxInt-c {
			return 0, fmt.Errorf("rank of %v: %w", combination, ErrOverflow)
		}
		rank += c
	}

	return rank, nil
}
