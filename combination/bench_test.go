package combination_test

import (
	"testing"

	"github.com/katalvlaran/toolbox/combination"
)

// BenchmarkRank ranks a fixed 6-combination.
func BenchmarkRank(b *testing.B) {
	c := []int{3, 11, 17, 29, 41, 48}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := combination.Rank(c, 0); err != nil {
			b.Fatalf("Rank failed: %v", err)
		}
	}
}

// BenchmarkUnrank unranks across the 6-of-49 space.
func BenchmarkUnrank(b *testing.B) {
	const total = 13983816
	for i := 0; i < b.N; i++ {
		if _, err := combination.Unrank(i%total, 6, 1); err != nil {
			b.Fatalf("Unrank failed: %v", err)
		}
	}
}

// BenchmarkGenerateWindow slices 1000 combinations deep inside 6-of-49.
func BenchmarkGenerateWindow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, err := combination.Combinations(49, 6, combination.WithWindow(10_000_000, 10_001_000, 1))
		if err != nil {
			b.Fatalf("Combinations failed: %v", err)
		}
		for g.Next() {
		}
	}
}

// BenchmarkSamplerDraw draws random 6-of-49 combinations.
func BenchmarkSamplerDraw(b *testing.B) {
	s := combination.NewSampler(combination.WithSeed(1))
	for i := 0; i < b.N; i++ {
		if _, err := s.Draw(49, 6, 1); err != nil {
			b.Fatalf("Draw failed: %v", err)
		}
	}
}
