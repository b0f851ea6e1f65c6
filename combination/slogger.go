// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// slogger.go — optional structured logging.

package combination

// SLogger abstracts the [*slog.Logger] behavior.
//
// The package logs window resolution and generator exhaustion at Debug
// level. The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
}

// DefaultSLogger returns the logger used when WithLogger is not given.
// It discards everything: the package writes nowhere unless configured.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {}
