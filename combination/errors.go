// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// errors.go — sentinel errors for the combination package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   • Every error is detected before a partial result is produced.
//   • No panics on user input. Option constructors may panic on nil arguments.

package combination

import "errors"

var (
	// ErrInvalidDomain indicates an unusable value domain or combination length:
	// a negative length, an empty domain, a non-positive generation length, or
	// a lookup table (indexes/keys) that cannot serve every position.
	ErrInvalidDomain = errors.New("combination: invalid domain")

	// ErrInvalidRank indicates a negative rank, or a window bound below the
	// lowest rank the window direction allows.
	ErrInvalidRank = errors.New("combination: invalid rank")

	// ErrInvalidValue indicates a combination element below the offset, or
	// a repeated element.
	ErrInvalidValue = errors.New("combination: invalid value")

	// ErrInvalidStep indicates a zero window step.
	ErrInvalidStep = errors.New("combination: step must not be zero")

	// ErrOverflow indicates a binomial coefficient or a rank exceeding the int range.
	ErrOverflow = errors.New("combination: value overflows int")
)
