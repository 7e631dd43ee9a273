// Package solve provides a bounded successive-substitution solver for
// implicit equations of the form x = f(x).
package solve

import (
	"fmt"
	"math"

	"github.com/bft-labs/equipsize/internal/domain"
)

// Defaults used by the vessel thickness correlations.
const (
	DefaultTolerance     = 0.001
	DefaultMaxIterations = 1000
)

// IterationError reports a fixed-point solve that failed to settle.
// It unwraps to domain.ErrNonConvergence.
type IterationError struct {
	Iterations int
	Last       float64
	Reason     string
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("%v after %d iterations (last=%g): %s",
		domain.ErrNonConvergence, e.Iterations, e.Last, e.Reason)
}

func (e *IterationError) Unwrap() error {
	return domain.ErrNonConvergence
}

// Options bounds a fixed-point solve.
type Options struct {
	// Tolerance is the relative change |(x_n - x_{n+1}) / x_n| below which
	// the iteration is considered converged.
	Tolerance float64
	// MaxIterations caps the number of evaluations of f.
	MaxIterations int
}

// DefaultOptions returns the tolerance and bound used by the vessel
// estimator.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// FixedPoint iterates x_{n+1} = f(x_n) from x0 and returns the first iterate
// whose relative change from its predecessor is within opts.Tolerance,
// together with the number of evaluations performed.
//
// A non-finite iterate, a zero predecessor (relative change undefined) or
// exhausting opts.MaxIterations yields an *IterationError.
func FixedPoint(f func(float64) float64, x0 float64, opts Options) (float64, int, error) {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	prev := x0
	for i := 1; i <= opts.MaxIterations; i++ {
		next := f(prev)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, i, &IterationError{Iterations: i, Last: next, Reason: "non-finite iterate"}
		}
		if prev == 0 {
			return 0, i, &IterationError{Iterations: i, Last: next, Reason: "zero iterate"}
		}
		if math.Abs((prev-next)/prev) <= opts.Tolerance {
			return next, i, nil
		}
		prev = next
	}
	return 0, opts.MaxIterations, &IterationError{
		Iterations: opts.MaxIterations,
		Last:       prev,
		Reason:     "iteration bound exceeded",
	}
}
