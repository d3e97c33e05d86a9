package rootfind

import (
	"errors"
	"fmt"
)

// Func is a scalar function f(x) supplied by the caller. The solver
// treats it as a black box: it may be expensive or impure, and it is
// evaluated exactly once per probe and once per iteration.
type Func func(x float64) float64

// Default accuracies, used by Default(). The relative term keeps a few
// ulps of slack at unit scale; the absolute term is a practical floor for
// roots of moderate magnitude.
const (
	DefaultRelativeAccuracy      = 1e-14
	DefaultAbsoluteAccuracy      = 1e-6
	DefaultFunctionValueAccuracy = 1e-15
)

// ErrInvalidAccuracy is returned by New when an accuracy is negative or NaN.
var ErrInvalidAccuracy = errors.New("rootfind: accuracies must be non-negative")

// IntervalError is returned when the search interval bounds are out of
// order (min > max). The bounds are carried for diagnostics; the solver
// never swaps them silently.
type IntervalError struct {
	Min, Max float64
}

func (e IntervalError) Error() string {
	return fmt.Sprintf("rootfind: invalid interval: min (%g) > max (%g)", e.Min, e.Max)
}

// OutOfRangeError is returned when the initial guess lies outside the
// search interval.
type OutOfRangeError struct {
	Initial, Min, Max float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("rootfind: initial guess %g not in [%g, %g]", e.Initial, e.Min, e.Max)
}

// BracketingError is returned when neither half of the interval, split at
// the initial guess, shows a sign change and no probed point is already
// within the function-value accuracy of zero. It carries the endpoint
// values so the caller can see why no root was found (typically an even
// number of roots in the interval, or the wrong interval entirely).
type BracketingError struct {
	Min, FMin, Max, FMax float64
}

func (e BracketingError) Error() string {
	return fmt.Sprintf("rootfind: interval does not bracket a root: f(%g)=%g, f(%g)=%g",
		e.Min, e.FMin, e.Max, e.FMax)
}

// Solver holds the three convergence tolerances of Brent's method. It is
// immutable after construction; one Solver may serve any number of
// sequential or concurrent searches.
type Solver struct {
	relativeAccuracy      float64
	absoluteAccuracy      float64
	functionValueAccuracy float64
}

// New constructs a Solver with the given tolerances.
// Each accuracy must be a non-negative, non-NaN number; note that passing
// both relative == 0 and absolute == 0 removes the positive tolerance
// floor, so termination then relies solely on f reaching an exactly
// representable zero.
func New(relative, absolute, functionValue float64) (*Solver, error) {
	if !(relative >= 0) || !(absolute >= 0) || !(functionValue >= 0) {
		return nil, ErrInvalidAccuracy
	}

	return &Solver{
		relativeAccuracy:      relative,
		absoluteAccuracy:      absolute,
		functionValueAccuracy: functionValue,
	}, nil
}

// Default returns a Solver with the package default accuracies.
func Default() *Solver {
	return &Solver{
		relativeAccuracy:      DefaultRelativeAccuracy,
		absoluteAccuracy:      DefaultAbsoluteAccuracy,
		functionValueAccuracy: DefaultFunctionValueAccuracy,
	}
}
