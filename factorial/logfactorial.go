package factorial

import "math"

// LogFactorial computes log(n!) as a float64. Values are built by
// cumulative summation of log(i), so cached and uncached results for
// the same n are bit-identical.
type LogFactorial struct {
	cache []float64
}

// NewLog returns a LogFactorial with no cache.
func NewLog() LogFactorial {
	return LogFactorial{}
}

// WithCache returns a copy whose values for 0..n come from a
// precomputed table, reusing whatever prefix the receiver already has.
func (l LogFactorial) WithCache(n int) (LogFactorial, error) {
	if n < 0 {
		return LogFactorial{}, ErrNegativeArgument
	}
	cache := make([]float64, n+1)
	kept := copy(cache, l.cache)
	if kept == 0 {
		cache[0] = 0
		kept = 1
	}
	for i := kept; i <= n; i++ {
		cache[i] = cache[i-1] + math.Log(float64(i))
	}
	return LogFactorial{cache: cache}, nil
}

// Value returns log(n!), or ErrNegativeArgument when n < 0.
func (l LogFactorial) Value(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeArgument
	}
	if n < len(l.cache) {
		return l.cache[n], nil
	}
	start, sum := 0, 0.0
	if len(l.cache) > 0 {
		start = len(l.cache) - 1
		sum = l.cache[start]
	}
	for i := start + 1; i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum, nil
}
