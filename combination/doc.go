// Package combination ranks, unranks and generates k-combinations using the
// combinatorial number system.
//
// 🚀 What is the combinatorial number system?
//
//	A bijection between non-negative integers and strictly increasing
//	integer sequences of fixed length k. The combination
//	c[0] < c[1] < … < c[k-1] has rank Σ C(c[i], i+1), and ranks follow the
//	lexicographic order of combinations compared from their largest element.
//	Neither direction needs to enumerate other combinations.
//
// ✨ Key features:
//   - Rank / Unrank: exact, overflow-checked, with an optional value offset
//   - Generate: lazy windows (start, stop, step) over any Domain, so that
//     3-of-50 (19600 combinations) or far larger spaces are sliced without
//     being materialized
//   - Domains: integer ranges, slices, slices read through an index table,
//     maps read through an ordered key table
//   - Sampler: uniform random combinations from a seeded Mersenne Twister
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/toolbox/combination"
//
//	r, _ := combination.Rank([]int{1, 3, 5}, 0)       // 14
//	c, _ := combination.Unrank(5, 3, 0)               // [0 2 4]
//
//	g, _ := combination.Combinations(50, 3,
//		combination.WithStart(200), combination.WithStop(203))
//	for rank, comb := range g.All() {
//		fmt.Println(rank, comb)
//	}
//
// Errors are package sentinels (ErrInvalidDomain, ErrInvalidRank,
// ErrInvalidValue, ErrInvalidStep, ErrOverflow); match them with errors.Is.
//
// Performance:
//
//   - Rank:     O(k log k + k²)
//   - Unrank:   O(k² · log rank)
//   - Generate: O(k² · log rank) per combination, O(k) memory per combination
package combination
