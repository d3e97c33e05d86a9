// Package factorial computes n! and log(n!) as float64 values, with an
// optional precomputed cache.
//
// Results are exact for n <= 20 (they fit an int64), finite through
// n = 170, and +Inf from n = 171 on, where the factorial exceeds the
// float64 range. The log variant stays finite far beyond that and is
// the right tool for ratios of large factorials.
//
// Both Factorial and LogFactorial are immutable values: WithCache
// returns a new instance and the original keeps working, so instances
// can be shared freely between goroutines.
package factorial
