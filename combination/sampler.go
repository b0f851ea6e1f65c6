// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// sampler.go — uniform random draws from a combination space.
//
// A draw picks a uniform rank in [0, C(n, length)) and unranks it, so the
// space is never enumerated. Draws are deterministic for a given seed.
//
// Concurrency: a Sampler wraps a *rand.Rand and is NOT goroutine-safe.
// Give each goroutine its own Sampler.

package combination

import (
	"fmt"
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// DefaultSeed seeds samplers built without WithSeed or WithSource.
const DefaultSeed int64 = 1

// SamplerOption customizes a Sampler.
type SamplerOption func(*samplerConfig)

type samplerConfig struct {
	src rand.Source
}

// WithSeed seeds the default Mersenne Twister source with seed.
func WithSeed(seed int64) SamplerOption {
	return func(c *samplerConfig) {
		c.src = newMT19937(seed)
	}
}

// WithSource draws ranks from src instead of the Mersenne Twister.
// Panics on nil.
func WithSource(src rand.Source) SamplerOption {
	if src == nil {
		panic("combination: WithSource(nil)")
	}
	return func(c *samplerConfig) {
		c.src = src
	}
}

// Sampler draws uniformly random combinations.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler backed by a Mersenne Twister seeded with
// DefaultSeed, unless an option says otherwise.
func NewSampler(opts ...SamplerOption) *Sampler {
	cfg := samplerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = newMT19937(DefaultSeed)
	}

	return &Sampler{rng: rand.New(cfg.src)}
}

func newMT19937(seed int64) *mt19937.MT19937 {
	mt := mt19937.New()
	mt.Seed(seed)

	return mt
}

// Rank returns a uniformly random rank among the combinations of length
// values out of n.
//
// Errors:
//   - ErrInvalidDomain if n ≤ 0, length ≤ 0 or length > n (empty space).
//   - ErrOverflow if the combination count does not fit in an int.
func (s *Sampler) Rank(n, length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("sample with length %d: %w", length, ErrInvalidDomain)
	}
	total, err := Count(n, length)
	if err != nil {
		return 0, fmt.Errorf("sample: %w", err)
	}
	if total == 0 {
		return 0, fmt.Errorf("sample %d out of %d: %w", length, n, ErrInvalidDomain)
	}

	return int(s.rng.Int63n(int64(total))), nil
}

// Draw returns a uniformly random combination of length integers out of
// [offset, offset+n), in ascending order. ErrOverflow is returned when that
// range does not fit in an int.
func (s *Sampler) Draw(n, length, offset int) ([]int, error) {
	if err := (Range{Size: n, Offset: offset}).Validate(); err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	rank, err := s.Rank(n, length)
	if err != nil {
		return nil, err
	}
	combination := make([]int, length)
	unrankInto(combination, rank)
	if err := shiftBy(combination, offset); err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}

	return combination, nil
}

// DrawFrom returns a uniformly random combination of length values taken
// from domain, in domain order.
func DrawFrom[T any](s *Sampler, domain Domain[T], length int) ([]T, error) {
	if domain == nil {
		return nil, fmt.Errorf("sample: nil domain: %w", ErrInvalidDomain)
	}
	if v, ok := domain.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
	}
	positions, err := s.Draw(domain.Len(), length, 0)
	if err != nil {
		return nil, err
	}
	values := make([]T, length)
	for i, p := range positions {
		values[i] = domain.At(p)
	}

	return values, nil
}
