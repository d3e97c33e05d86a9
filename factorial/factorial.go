package factorial

import (
	"errors"
	"math"
)

// ErrNegativeArgument is returned when a factorial is requested for n < 0.
var ErrNegativeArgument = errors.New("factorial: argument must be non-negative")

// maxFinite is the largest n with a finite float64 factorial; 171! overflows.
const maxFinite = 170

// exact holds n! for every n that fits an int64.
var exact = [...]int64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880,
	3628800, 39916800, 479001600, 6227020800, 87178291200,
	1307674368000, 20922789888000, 355687428096000,
	6402373705728000, 121645100408832000, 2432902008176640000,
}

// Factorial computes n! as a float64. The zero value computes every
// request directly; WithCache trades memory for constant-time lookups.
type Factorial struct {
	cache []float64
}

// New returns a Factorial with no cache.
func New() Factorial {
	return Factorial{}
}

// WithCache returns a copy whose values for 0..n come from a
// precomputed table. Entries already present in the receiver's cache
// are reused, so shrinking and re-growing a cache is cheap. n may
// exceed 170; the extra entries are simply +Inf.
func (f Factorial) WithCache(n int) (Factorial, error) {
	if n < 0 {
		return Factorial{}, ErrNegativeArgument
	}
	cache := make([]float64, n+1)
	kept := copy(cache, f.cache)
	if kept == 0 {
		cache[0] = 1
		kept = 1
	}
	for i := kept; i <= n; i++ {
		cache[i] = cache[i-1] * float64(i)
	}
	return Factorial{cache: cache}, nil
}

// Value returns n!, or ErrNegativeArgument when n < 0.
func (f Factorial) Value(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeArgument
	}
	if n < len(f.cache) {
		return f.cache[n], nil
	}
	if n > maxFinite {
		return math.Inf(1), nil
	}
	if n < len(exact) {
		return float64(exact[n]), nil
	}
	// Pick up from the cache (or the exact table) and multiply the rest.
	start := len(exact) - 1
	result := float64(exact[start])
	if len(f.cache) > len(exact) {
		start = len(f.cache) - 1
		result = f.cache[start]
	}
	for i := start + 1; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}
