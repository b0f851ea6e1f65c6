// SPDX-License-Identifier: MIT
// Package: toolbox/combination
//
// window.go — rank window resolution with slice semantics.
//
// Rules (total = number of combinations):
//   • step > 0: start defaults to 0, stop to total; stop is clamped to total;
//     negative bounds are rejected; start ≥ stop is an empty window.
//   • step < 0: start defaults to total-1 and is clamped to it; stop defaults
//     to -1 so that rank 0 is reached; start < 0 or stop < -1 are rejected;
//     start ≤ stop is an empty window.
//   • step = 0 is rejected.

package combination

import "fmt"

// Window is a resolved rank window: Count ranks starting at Start, Step apart.
type Window struct {
	Start int
	Stop  int
	Step  int
	Count int
}

// resolveWindow applies defaults and bounds to the configured window.
func resolveWindow(cfg config, total int) (Window, error) {
	step := cfg.step
	if step == 0 {
		return Window{}, ErrInvalidStep
	}

	if step > 0 {
		start, stop := 0, total
		if cfg.hasStart {
			start = cfg.start
		}
		if cfg.hasStop {
			stop = cfg.stop
		}
		if start < 0 || stop < 0 {
			return Window{}, fmt.Errorf("window [%d, %d): %w", start, stop, ErrInvalidRank)
		}
		stop = min(stop, total)
		w := Window{Start: start, Stop: stop, Step: step}
		if start < stop {
			w.Count = (stop-start-1)/step + 1
		}

		return w, nil
	}

	start, stop := total-1, -1
	if cfg.hasStart {
		if cfg.start < 0 {
			return Window{}, fmt.Errorf("window start %d: %w", cfg.start, ErrInvalidRank)
		}
		start = min(cfg.start, total-1)
	}
	if cfg.hasStop {
		stop = cfg.stop
	}
	if stop < -1 {
		return Window{}, fmt.Errorf("window stop %d: %w", stop, ErrInvalidRank)
	}
	w := Window{Start: start, Stop: stop, Step: step}
	if start > stop {
		w.Count = int(uint(start-stop-1)/uint(-step)) + 1
	}

	return w, nil
}
