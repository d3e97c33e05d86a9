package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("fraction: zero denominator")

	// ErrDivisionByZero indicates division by a zero fraction, or the
	// reciprocal of zero.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrOverflow indicates a result that does not fit in an int64
	// numerator/denominator pair.
	ErrOverflow = errors.New("fraction: int64 overflow")

	// ErrFormat indicates a string that Parse cannot read.
	ErrFormat = errors.New("fraction: invalid format")
)

// ConvergenceError is returned by the float64 conversions when the
// continued-fraction expansion fails to approximate the value within the
// permitted number of iterations.
type ConvergenceError struct {
	Value      float64
	Iterations int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("fraction: unable to convert %g to fraction after %d iterations",
		e.Value, e.Iterations)
}
