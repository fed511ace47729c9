package layout

import (
	"github.com/matzehuels/graphforce/pkg/errors"
)

// ScheduleMode selects the temperature decay curve.
type ScheduleMode string

// Supported schedule modes.
const (
	// ScheduleQuadratic decays as initial·((x−1)² + ε) for x in [0, 1].
	// Fast early cooling, long settle tail. The default.
	ScheduleQuadratic ScheduleMode = "quadratic"

	// ScheduleLinear decays as initial·((1−x) + ε).
	ScheduleLinear ScheduleMode = "linear"
)

// scheduleEps keeps the final temperature a hair above zero; an exactly
// zero temperature would make the displacement clamp degenerate.
const scheduleEps = 1e-9

// Schedule produces the temperature sequence that bounds per-iteration
// node displacement. The sequence has exactly iterations entries, is
// non-increasing, strictly positive, and bounded above by initial.
func Schedule(initial float64, iterations int, mode ScheduleMode) ([]float64, error) {
	if initial <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSchedule, "initial temperature must be positive, got %g", initial)
	}
	if iterations < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSchedule, "iteration count must be non-negative, got %d", iterations)
	}
	if mode == "" {
		mode = ScheduleQuadratic
	}

	var decay func(x float64) float64
	switch mode {
	case ScheduleQuadratic:
		decay = func(x float64) float64 { return (x-1)*(x-1) + scheduleEps }
	case ScheduleLinear:
		decay = func(x float64) float64 { return (1 - x) + scheduleEps }
	default:
		return nil, errors.New(errors.ErrCodeInvalidSchedule, "unknown schedule mode %q (supported: quadratic, linear)", mode)
	}

	temps := make([]float64, iterations)
	for i := range temps {
		// x samples [0, 1] inclusive across the iteration count.
		x := 0.0
		if iterations > 1 {
			x = float64(i) / float64(iterations-1)
		}
		temps[i] = initial * decay(x)
	}
	return temps, nil
}
