// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// domain.go — value domains a Generator draws combinations from.
//
// A domain maps a position p ∈ [0, Len()) to a value. Unranking yields
// positions; the domain turns them into values. Domains whose lookup tables
// can disagree with their values implement Validate, which Generate calls
// before producing anything.

package combination

import (
	"fmt"
	"math"
)

// Domain is an ordered collection of values addressed by position.
type Domain[T any] interface {
	// Len returns the number of positions in the domain.
	Len() int
	// At returns the value at position p, 0 ≤ p < Len().
	At(p int) T
}

// validator is implemented by domains that need an eager consistency check.
type validator interface {
	Validate() error
}

// Range is the implicit integer domain [Offset, Offset+Size).
type Range struct {
	Size   int
	Offset int
}

var _ Domain[int] = Range{}

// Len implements Domain.
func (r Range) Len() int { return r.Size }

// At implements Domain.
func (r Range) At(p int) int { return r.Offset + p }

// Validate checks that the last value, Offset+Size-1, fits in an int.
func (r Range) Validate() error {
	if r.Size > 0 && r.Offset > math.MaxInt-(r.Size-1) {
		return fmt.Errorf("range of %d from %d: %w", r.Size, r.Offset, ErrOverflow)
	}

	return nil
}

// indexedRange reads a Range through a position lookup table: position p
// holds Range.At(indexes[p]).
type indexedRange struct {
	Range
	indexes []int
}

var _ Domain[int] = indexedRange{}

// At implements Domain.
func (x indexedRange) At(p int) int { return x.Range.At(x.indexes[p]) }

// Validate checks the range bounds and the lookup table.
func (x indexedRange) Validate() error {
	if err := x.Range.Validate(); err != nil {
		return err
	}

	return checkIndexes(x.indexes, x.Size)
}

// Slice is an explicit ordered list of values.
type Slice[T any] []T

// Len implements Domain.
func (s Slice[T]) Len() int { return len(s) }

// At implements Domain.
func (s Slice[T]) At(p int) T { return s[p] }

// Indexed reads Values through a position lookup table: position p holds
// Values[Indexes[p]]. Only the first len(Values) entries of Indexes are used.
type Indexed[T any] struct {
	Values  []T
	Indexes []int
}

// Len implements Domain.
func (x Indexed[T]) Len() int { return len(x.Values) }

// At implements Domain.
func (x Indexed[T]) At(p int) T { return x.Values[x.Indexes[p]] }

// Validate checks that every position resolves to an existing value.
func (x Indexed[T]) Validate() error { return checkIndexes(x.Indexes, len(x.Values)) }

// checkIndexes verifies that the first n entries of indexes exist and lie in
// [0, n).
func checkIndexes(indexes []int, n int) error {
	if len(indexes) < n {
		return fmt.Errorf("%d indexes for %d values: %w", len(indexes), n, ErrInvalidDomain)
	}
	for p, idx := range indexes[:n] {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d at position %d out of range: %w", idx, p, ErrInvalidDomain)
		}
	}

	return nil
}

// Keyed reads a map through an ordered key table: position p holds
// Values[Keys[p]]. Only the first len(Values) keys are used.
type Keyed[K comparable, V any] struct {
	Values map[K]V
	Keys   []K
}

// Len implements Domain.
func (x Keyed[K, V]) Len() int { return len(x.Values) }

// At implements Domain.
func (x Keyed[K, V]) At(p int) V { return x.Values[x.Keys[p]] }

// Validate checks that the key table covers every position with a present key.
func (x Keyed[K, V]) Validate() error {
	if len(x.Keys) < len(x.Values) {
		return fmt.Errorf("%d keys for %d values: %w", len(x.Keys), len(x.Values), ErrInvalidDomain)
	}
	for p, key := range x.Keys[:len(x.Values)] {
		if _, ok := x.Values[key]; !ok {
			return fmt.Errorf("key %v at position %d not found: %w", key, p, ErrInvalidDomain)
		}
	}

	return nil
}
