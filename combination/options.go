// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// options.go — functional options for Generate and its helpers.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Constructors panic on nil arguments; Generate never panics.
//   - Window values are validated by Generate, against the combination count.

package combination

// Option customizes a generation before the window is resolved.
type Option func(*config)

// config gathers every generation knob. Defaults come from defaultConfig.
type config struct {
	start, stop       int
	hasStart, hasStop bool
	step              int
	offset            int
	indexes           []int
	logger            SLogger
}

// defaultConfig returns the whole-space window, offset 0, no lookup table and
// a silent logger.
func defaultConfig() config {
	return config{
		step:   1,
		logger: DefaultSLogger(),
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStart sets the rank of the first combination produced.
// Defaults to 0, or to the last rank when the step is negative.
func WithStart(rank int) Option {
	return func(c *config) {
		c.start = rank
		c.hasStart = true
	}
}

// WithStop sets the rank at which generation stops (excluded).
// Defaults to the combination count, or to -1 when the step is negative so
// that rank 0 is included.
func WithStop(rank int) Option {
	return func(c *config) {
		c.stop = rank
		c.hasStop = true
	}
}

// WithStep sets the distance between consecutive ranks. A negative step
// walks the window from high ranks to low ranks. Defaults to 1.
func WithStep(step int) Option {
	return func(c *config) {
		c.step = step
	}
}

// WithWindow is shorthand for WithStart, WithStop and WithStep together.
func WithWindow(start, stop, step int) Option {
	return func(c *config) {
		WithStart(start)(c)
		WithStop(stop)(c)
		WithStep(step)(c)
	}
}

// WithOffset shifts the integer range used by Combinations so that values
// start at offset instead of 0. Generate, CombinationsOf and
// CombinationsOfMap reject a non-zero offset.
func WithOffset(offset int) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithIndexes sets the position lookup table used by CombinationsOf and
// Combinations: position p reads the value at indexes[p]. Generate and
// CombinationsOfMap reject it.
func WithIndexes(indexes []int) Option {
	return func(c *config) {
		c.indexes = indexes
	}
}

// WithLogger routes debug output to logger, typically a *slog.Logger.
// Panics on nil.
func WithLogger(logger SLogger) Option {
	if logger == nil {
		panic("combination: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}
