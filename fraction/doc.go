// Package fraction implements exact rational arithmetic over int64
// numerators and denominators.
//
// A Fraction is always held in canonical form: reduced to lowest terms,
// sign carried by the numerator, denominator strictly positive. Values
// are immutable; every operation returns a new Fraction.
//
// Every arithmetic path is overflow-checked. Addition and subtraction
// use the gcd decomposition from Knuth, The Art of Computer Programming
// vol. 2, §4.5.1, so sums whose naive cross-multiplication would
// overflow can still be represented exactly; when a result genuinely
// does not fit in int64 the operation returns ErrOverflow instead of
// wrapping silently.
//
// Conversion from float64 uses a continued-fraction expansion, bounded
// either by an approximation error (FromEpsilon) or by a maximum
// denominator (FromMaxDenominator). Irrational values that resist
// rational approximation within the requested bounds — the golden ratio
// is the classic offender — yield a ConvergenceError.
//
// The package is self-contained: no other numkit package calls it and it
// calls none of them.
package fraction
