// Package toolbox is a small collection of independent helpers, built around
// a combination engine that ranks, unranks and slices combinatorial spaces
// without enumerating them.
//
// 🚀 What is in the box?
//
//   - combination/: combinatorial number system. Rank, Unrank, lazy windowed
//     generation over integer ranges, slices and maps, random draws
//   - mathx/: generic MinMax, Limit and Quantity helpers
//
// ✨ Why?
//
//   - 3-of-50 is already 19600 combinations and the count explodes quickly;
//     any window of the space is computed on demand from its ranks
//   - Pure functions, sentinel errors, no global state
//   - Silent by default; plug a *slog.Logger in with combination.WithLogger
//
// Quick example:
//
//	g, _ := combination.Combinations(50, 3,
//		combination.WithStart(200), combination.WithStop(203))
//	for rank, c := range g.All() {
//		fmt.Println(rank, c) // 200 [7 8 11] …
//	}
//
//	go get github.com/katalvlaran/toolbox
package toolbox
