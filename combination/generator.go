// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// generator.go — lazy, windowed generation of combinations.
//
// Combinations are never enumerated: each one is unranked on demand from the
// next rank of the window, so slicing costs O(window size · length) work
// independently of the size of the combination space.
//
// Concurrency: a Generator is a cursor. Independent generators may run in
// parallel; a single generator must not be advanced from several goroutines.

package combination

import (
	"fmt"
	"iter"
)

// Generator yields the combinations of a rank window, in window order.
//
// Usage:
//
//	g, err := combination.Combinations(5, 3)
//	if err != nil { ... }
//	for g.Next() {
//		fmt.Println(g.Rank(), g.Combination())
//	}
type Generator[T any] struct {
	domain    Domain[T]
	length    int
	window    Window
	next      int // rank produced by the following call to Next
	remaining int
	rank      int
	positions []int
	current   []T
	logger    SLogger
}

// Generate returns a generator over the combinations of length values drawn
// from domain, restricted to the rank window set by the options.
//
// The domain carries its own offset and lookup table, so WithOffset and
// WithIndexes are rejected here; they belong to Combinations and
// CombinationsOf.
//
// Errors (all returned before anything is generated):
//   - ErrInvalidDomain if length ≤ 0, the domain is empty, the domain
//     fails its own validation, or WithOffset/WithIndexes is given.
//   - ErrInvalidStep, ErrInvalidRank for an unusable window.
//   - ErrOverflow if the combination count, or a Range bound, does not fit
//     in an int.
//
// A length greater than the domain size is a valid, empty space.
func Generate[T any](domain Domain[T], length int, opts ...Option) (*Generator[T], error) {
	cfg := newConfig(opts)
	if err := rejectLookups(cfg, "a custom domain"); err != nil {
		return nil, err
	}

	return generate(domain, length, cfg)
}

// Combinations generates combinations of length integers out of the range
// [offset, offset+n), where offset is set with WithOffset. With WithIndexes,
// position p reads offset+indexes[p].
func Combinations(n, length int, opts ...Option) (*Generator[int], error) {
	cfg := newConfig(opts)
	r := Range{Size: n, Offset: cfg.offset}
	if cfg.indexes != nil {
		return generate[int](indexedRange{Range: r, indexes: cfg.indexes}, length, cfg)
	}

	return generate[int](r, length, cfg)
}

// CombinationsOf generates combinations of length values taken from values.
// With WithIndexes, position p reads values[indexes[p]]. WithOffset is
// rejected with ErrInvalidDomain.
func CombinationsOf[T any](values []T, length int, opts ...Option) (*Generator[T], error) {
	cfg := newConfig(opts)
	if cfg.offset != 0 {
		return nil, fmt.Errorf("generate: offset %d on explicit values: %w", cfg.offset, ErrInvalidDomain)
	}
	if cfg.indexes != nil {
		return generate[T](Indexed[T]{Values: values, Indexes: cfg.indexes}, length, cfg)
	}

	return generate[T](Slice[T](values), length, cfg)
}

// CombinationsOfMap generates combinations of length values taken from a map,
// position p reading values[keys[p]]. WithOffset and WithIndexes are
// rejected with ErrInvalidDomain.
func CombinationsOfMap[K comparable, V any](values map[K]V, keys []K, length int, opts ...Option) (*Generator[V], error) {
	cfg := newConfig(opts)
	if err := rejectLookups(cfg, "a map"); err != nil {
		return nil, err
	}

	return generate[V](Keyed[K, V]{Values: values, Keys: keys}, length, cfg)
}

// rejectLookups fails when the options carry an offset or a lookup table
// that the target domain cannot apply.
func rejectLookups(cfg config, target string) error {
	if cfg.offset != 0 {
		return fmt.Errorf("generate: offset %d on %s: %w", cfg.offset, target, ErrInvalidDomain)
	}
	if cfg.indexes != nil {
		return fmt.Errorf("generate: indexes on %s: %w", target, ErrInvalidDomain)
	}

	return nil
}

func generate[T any](domain Domain[T], length int, cfg config) (*Generator[T], error) {
	if domain == nil {
		return nil, fmt.Errorf("generate: nil domain: %w", ErrInvalidDomain)
	}
	if length <= 0 {
		return nil, fmt.Errorf("generate with length %d: %w", length, ErrInvalidDomain)
	}
	n := domain.Len()
	if n <= 0 {
		return nil, fmt.Errorf("generate from %d values: %w", n, ErrInvalidDomain)
	}
	if v, ok := domain.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
	}

	total, err := Count(n, length)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	w, err := resolveWindow(cfg, total)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	cfg.logger.Debug("combination: window resolved",
		"values", n, "length", length, "total", total,
		"start", w.Start, "stop", w.Stop, "step", w.Step, "count", w.Count)

	return &Generator[T]{
		domain:    domain,
		length:    length,
		window:    w,
		next:      w.Start,
		remaining: w.Count,
		rank:      -1,
		positions: make([]int, length),
		logger:    cfg.logger,
	}, nil
}

// Window returns the resolved rank window.
func (g *Generator[T]) Window() Window { return g.window }

// Remaining returns how many combinations are left to produce.
func (g *Generator[T]) Remaining() int { return g.remaining }

// Next advances to the following combination of the window.
// It returns false once the window is exhausted.
func (g *Generator[T]) Next() bool {
	if g.remaining == 0 {
		if g.rank >= 0 {
			g.logger.Debug("combination: window exhausted", "last", g.rank)
			g.current, g.rank = nil, -1
		}
		return false
	}

	g.rank = g.next
	unrankInto(g.positions, g.rank)
	g.current = make([]T, g.length)
	for i, p := range g.positions {
		g.current[i] = g.domain.At(p)
	}

	g.remaining--
	if g.remaining > 0 {
		g.next += g.window.Step
	}

	return true
}

// Combination returns the combination produced by the last call to Next.
// The slice is freshly allocated for every combination and owned by the caller.
func (g *Generator[T]) Combination() []T { return g.current }

// Rank returns the rank of the current combination, or -1 before the first
// call to Next and after exhaustion.
func (g *Generator[T]) Rank() int { return g.rank }

// All returns an iterator over the remaining (rank, combination) pairs.
// Iterating advances the generator.
func (g *Generator[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for g.Next() {
			if !yield(g.rank, g.current) {
				return
			}
		}
	}
}

// Values returns an iterator over the remaining combinations.
// Iterating advances the generator.
func (g *Generator[T]) Values() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for g.Next() {
			if !yield(g.current) {
				return
			}
		}
	}
}

// Collect drains the generator into a slice.
func (g *Generator[T]) Collect() [][]T {
	out := make([][]T, 0, g.remaining)
	for g.Next() {
		out = append(out, g.current)
	}

	return out
}
