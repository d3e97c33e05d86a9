package fraction

import (
	"math"
	"strconv"
	"strings"
)

// Fraction is an exact rational number: Num()/Den(), reduced, with a
// strictly positive denominator. The zero value is 0/0 and invalid; use
// the package constructors (or Zero / One).
type Fraction struct {
	num int64
	den int64
}

var (
	// Zero is the fraction 0/1.
	Zero = Fraction{num: 0, den: 1}
	// One is the fraction 1/1.
	One = Fraction{num: 1, den: 1}
)

// Default bounds for From: the expansion stops once the approximation is
// within defaultEpsilon, and gives up after defaultMaxIterations steps.
const (
	defaultEpsilon       = 1e-5
	defaultMaxIterations = 100
)

// New returns num/den in canonical form: reduced by the gcd, sign moved
// onto the numerator.
//
// Errors: ErrZeroDenominator when den == 0; ErrOverflow when
// normalization cannot represent the result (num or den equal to
// math.MinInt64 with a negative denominator).
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return Fraction{}, ErrOverflow
		}
		num = -num
		den = -den
	}
	if g := int64(gcd(mag(num), mag(den))); g > 1 {
		num /= g
		den /= g
	}

	return Fraction{num: num, den: den}, nil
}

// NewInt returns the whole number n as a fraction n/1.
func NewInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// From converts a float64 to a fraction using the default bounds
// (epsilon 1e-5, at most 100 continued-fraction iterations).
func From(value float64) (Fraction, error) {
	return fromContinued(value, defaultEpsilon, math.MaxInt64, defaultMaxIterations)
}

// FromEpsilon converts a float64 to a fraction whose value is within
// epsilon of value, giving up after maxIterations expansion steps.
func FromEpsilon(value, epsilon float64, maxIterations int) (Fraction, error) {
	return fromContinued(value, epsilon, math.MaxInt64, maxIterations)
}

// FromMaxDenominator converts a float64 to the best fraction whose
// denominator does not exceed maxDenominator.
func FromMaxDenominator(value float64, maxDenominator int64) (Fraction, error) {
	return fromContinued(value, 0, maxDenominator, defaultMaxIterations)
}

// fromContinued runs the continued-fraction expansion of value, tracking
// the convergents p/q, until the convergent is close enough, the
// denominator bound is reached, or the iteration budget runs out.
//
// Two stopping regimes share the loop:
//   - epsilon > 0: stop once |p/q - value| <= epsilon.
//   - epsilon == 0: stop at the largest q below maxDenominator.
func fromContinued(value, epsilon float64, maxDenominator int64, maxIterations int) (Fraction, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, ConvergenceError{Value: value, Iterations: 0}
	}
	// int64Bound is 2^63 as a float64; floor(value) must convert safely.
	const int64Bound = 9.223372036854775808e18
	if value >= int64Bound || value < -int64Bound {
		return Fraction{}, ErrOverflow
	}

	r0 := value
	a0 := int64(math.Floor(r0))

	// Whole numbers short-circuit the expansion.
	if math.Abs(float64(a0)-value) < epsilon {
		return Fraction{num: a0, den: 1}, nil
	}

	var (
		p0, q0 int64 = 1, 0
		p1, q1       = a0, int64(1)
		p2, q2 int64
		n      int
	)
	for {
		n++
		r1 := 1.0 / (r0 - float64(a0))

		// The next partial quotient, or the previous convergent when it
		// no longer fits (r1 overflows int64 for exact-integer
		// remainders, and a1·p1+p0 / a1·q1+q0 may overflow the checked
		// arithmetic).
		ok := r1 < int64Bound
		var a1 int64
		if ok {
			a1 = int64(math.Floor(r1))
			p2, ok = mulAdd(a1, p1, p0)
		}
		if ok {
			q2, ok = mulAdd(a1, q1, q0)
		}
		if !ok {
			if n >= maxIterations {
				return Fraction{}, ConvergenceError{Value: value, Iterations: maxIterations}
			}
			if epsilon == 0 && q1 < maxDenominator {
				return New(p1, q1)
			}

			return Fraction{}, ErrOverflow
		}

		convergent := float64(p2) / float64(q2)
		if n < maxIterations && math.Abs(convergent-value) > epsilon && q2 < maxDenominator {
			p0, p1 = p1, p2
			q0, q1 = q1, q2
			a0 = a1
			r0 = r1

			continue
		}

		break
	}

	if n >= maxIterations {
		return Fraction{}, ConvergenceError{Value: value, Iterations: maxIterations}
	}

	if q2 < maxDenominator {
		return New(p2, q2)
	}

	return New(p1, q1)
}

// Parse reads a fraction in the format produced by String: either a
// plain integer ("3") or "num / den" (whitespace around the slash is
// optional).
func Parse(s string) (Fraction, error) {
	num, den := s, ""
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
	}

	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return Fraction{}, ErrFormat
	}
	if den == "" {
		return NewInt(n), nil
	}

	d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return Fraction{}, ErrFormat
	}

	return New(n, d)
}

// Num returns the numerator; it carries the sign of the fraction.
func (f Fraction) Num() int64 { return f.num }

// Den returns the denominator, always positive for constructed values.
func (f Fraction) Den() int64 { return f.den }

// Sign returns -1, 0 or +1 according to the sign of the fraction.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Float64 returns the fraction as a float64, rounding if needed.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

// String formats the fraction as "num / den", or just the numerator when
// the denominator is 1.
func (f Fraction) String() string {
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + " / " + strconv.FormatInt(f.den, 10)
}
