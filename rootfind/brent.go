package rootfind

import "math"

// FindRoot searches for a root of f inside [min, max], probing the
// midpoint first. Equivalent to FindRootFrom(f, min, (min+max)/2, max).
//
// Errors: IntervalError, BracketingError.
func (s *Solver) FindRoot(f Func, min, max float64) (float64, error) {
	return s.FindRootFrom(f, min, 0.5*(min+max), max)
}

// FindRootFrom searches for a root of f inside [min, max], starting from
// the estimate initial.
//
// Resolution order (one function evaluation per probe, none repeated):
//  1. |f(initial)| within the function-value accuracy → return initial.
//  2. |f(min)| within the function-value accuracy → return min.
//  3. f(initial)·f(min) < 0 → iterate on [min, initial].
//  4. |f(max)| within the function-value accuracy → return max.
//  5. f(initial)·f(max) < 0 → iterate on [initial, max].
//  6. Otherwise neither half brackets a sign change → BracketingError.
//
// The sign test compares the product against zero rather than subtracting
// magnitudes, so cancellation cannot fabricate a spurious zero. A NaN
// function value fails every product test and therefore surfaces as a
// BracketingError instead of being chased by the iteration.
//
// Errors: IntervalError, OutOfRangeError, BracketingError.
//
// Complexity: 1–3 evaluations for bracket setup, then one evaluation per
// Brent iteration; superlinear convergence near a simple root, never
// worse than bisection.
func (s *Solver) FindRootFrom(f Func, min, initial, max float64) (float64, error) {
	if min > max {
		return 0, IntervalError{Min: min, Max: max}
	}
	if initial < min || initial > max {
		return 0, OutOfRangeError{Initial: initial, Min: min, Max: max}
	}

	// Return the initial guess if it is good enough.
	yInitial := f(initial)
	if math.Abs(yInitial) <= s.functionValueAccuracy {
		return initial, nil
	}

	// Return the first endpoint if it is good enough.
	yMin := f(min)
	if math.Abs(yMin) <= s.functionValueAccuracy {
		return min, nil
	}

	// Reduce the interval if min and initial bracket the root.
	if productNegative(yInitial, yMin) {
		return s.brent(f, min, initial, yMin, yInitial), nil
	}

	// Return the second endpoint if it is good enough.
	yMax := f(max)
	if math.Abs(yMax) <= s.functionValueAccuracy {
		return max, nil
	}

	// Reduce the interval if initial and max bracket the root.
	if productNegative(yInitial, yMax) {
		return s.brent(f, initial, max, yInitial, yMax), nil
	}

	return 0, BracketingError{Min: min, FMin: yMin, Max: max, FMax: yMax}
}

// brent runs the core iteration on an interval already known to bracket a
// root: fLo and fHi have strictly opposite signs. It cannot fail; the
// bracket is preserved at every step and the positive tolerance floor
// forces |m| <= tol in finitely many iterations.
//
// Reference: Brent, “Algorithms for Minimization Without Derivatives”,
// Dover 0-486-41998-3, p. 58.
func (s *Solver) brent(f Func, lo, hi, fLo, fHi float64) float64 {
	a := lo
	fa := fLo
	b := hi
	fb := fHi
	c := a
	fc := fa
	d := b - a
	e := d

	t := s.absoluteAccuracy
	eps := s.relativeAccuracy

	for {
		// Keep b the point with the smaller-magnitude function value.
		if math.Abs(fc) < math.Abs(fb) {
			a = b
			b = c
			c = a
			fa = fb
			fb = fc
			fc = fa
		}

		tol := 2*eps*math.Abs(b) + t
		m := 0.5 * (c - b)

		if math.Abs(m) <= tol || equalsULP(fb, 0) {
			return b
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Force bisection.
			d = m
			e = d
		} else {
			sw := fb / fa
			var p, q float64
			// The equality test (a == c) is intentional, it is part of
			// the original Brent's method and it should NOT be replaced
			// by a proximity test.
			if a == c {
				// Linear interpolation.
				p = 2 * m * sw
				q = 1 - sw
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = sw * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (sw - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			sw = e
			e = d
			if p >= 1.5*m*q-math.Abs(tol*q) || p >= math.Abs(0.5*sw*q) {
				// Interpolation points in the wrong direction, or
				// progress is too slow. Fall back to bisection.
				d = m
				e = d
			} else {
				d = p / q
			}
		}
		a = b
		fa = fb

		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if (fb > 0 && fc > 0) || (fb <= 0 && fc <= 0) {
			// c no longer opposes b in sign; restore the bracket.
			c = a
			fc = fa
			d = b - a
			e = d
		}
	}
}

// productNegative reports whether x·y is strictly negative under a total
// order that places -0.0 below +0.0, so an underflowed product of
// opposite-sign values still counts as a sign change.
func productNegative(x, y float64) bool {
	p := x * y

	return p < 0 || (p == 0 && math.Signbit(p))
}

// equalsULP reports whether x and y are equal within one unit in the last
// place. This is the library's floating-point equality convention; NaN is
// never equal to anything.
func equalsULP(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	xi := int64(math.Float64bits(x))
	yi := int64(math.Float64bits(y))
	// Map the raw bits onto a lexicographically ordered scale so that
	// adjacent floats differ by one, across the zero boundary too.
	if xi < 0 {
		xi = math.MinInt64 - xi
	}
	if yi < 0 {
		yi = math.MinInt64 - yi
	}
	diff := xi - yi
	if diff < 0 {
		diff = -diff
	}

	return diff <= 1
}
