package rootfind_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/numkit/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSolver builds a tight solver or fails the test.
func newSolver(t *testing.T, rel, abs, fval float64) *rootfind.Solver {
	t.Helper()
	s, err := rootfind.New(rel, abs, fval)
	require.NoError(t, err)

	return s
}

// counting wraps f and counts evaluations, so probe budgets can be asserted.
func counting(f rootfind.Func, n *int) rootfind.Func {
	return func(x float64) float64 {
		*n++

		return f(x)
	}
}

// TestNew_RejectsBadAccuracy verifies that negative or NaN accuracies are
// refused at construction.
func TestNew_RejectsBadAccuracy(t *testing.T) {
	_, err := rootfind.New(-1e-10, 1e-10, 1e-14)
	assert.ErrorIs(t, err, rootfind.ErrInvalidAccuracy, "negative relative accuracy must error")

	_, err = rootfind.New(1e-10, -1, 1e-14)
	assert.ErrorIs(t, err, rootfind.ErrInvalidAccuracy, "negative absolute accuracy must error")

	_, err = rootfind.New(1e-10, 1e-10, math.NaN())
	assert.ErrorIs(t, err, rootfind.ErrInvalidAccuracy, "NaN accuracy must error")
}

// TestFindRoot_Linear solves f(x) = x - 2 on [0, 10].
func TestFindRoot_Linear(t *testing.T) {
	s := newSolver(t, 1e-10, 1e-10, 1e-14)

	root, err := s.FindRoot(func(x float64) float64 { return x - 2 }, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-9, "root of x-2 is 2")
}

// TestFindRoot_Cubic solves x^3 - x - 2 on [1, 2].
func TestFindRoot_Cubic(t *testing.T) {
	s := newSolver(t, 1e-12, 1e-12, 1e-15)

	f := func(x float64) float64 { return x*x*x - x - 2 }
	root, err := s.FindRoot(f, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5213797068045675, root, 1e-10, "real root of x^3-x-2")
	assert.InDelta(t, 0, f(root), 1e-10, "function value at the root is near zero")
}

// TestFindRootFrom_Cosine solves cos(x) on [0, 3] from the guess 1.0.
func TestFindRootFrom_Cosine(t *testing.T) {
	s := newSolver(t, 1e-12, 1e-12, 1e-15)

	root, err := s.FindRootFrom(math.Cos, 0, 1.0, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-10, "cos crosses zero at π/2")
}

// TestFindRoot_ResultInsideInterval checks the bracket invariant from the
// outside: the returned root never leaves the original interval.
func TestFindRoot_ResultInsideInterval(t *testing.T) {
	s := rootfind.Default()

	cases := []struct {
		name     string
		f        rootfind.Func
		min, max float64
	}{
		{"sine", math.Sin, -1, 2},
		{"shifted exp", func(x float64) float64 { return math.Exp(x) - 2 }, 0, 2},
		{"steep cubic", func(x float64) float64 { return (x - 0.3) * (x*x + 40) }, -5, 5},
		{"flat near root", func(x float64) float64 { return math.Pow(x-1, 3) }, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := s.FindRoot(tc.f, tc.min, tc.max)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, root, tc.min, "root below interval")
			assert.LessOrEqual(t, root, tc.max, "root above interval")
		})
	}
}

// TestFindRoot_ConvergenceBound verifies |result - r| <= 2·ε·|result| + t
// for functions with a known root (with a little floating-point slack).
func TestFindRoot_ConvergenceBound(t *testing.T) {
	const (
		rel = 1e-12
		abs = 1e-10
	)
	s := newSolver(t, rel, abs, 0)

	cases := []struct {
		name     string
		f        rootfind.Func
		min, max float64
		root     float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"ln", func(x float64) float64 { return math.Log(x) }, 0.5, 2, 1},
		{"atan shifted", func(x float64) float64 { return math.Atan(x - 0.25) }, -1, 1, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := s.FindRoot(tc.f, tc.min, tc.max)
			require.NoError(t, err)
			bound := 2*rel*math.Abs(root) + abs
			assert.LessOrEqual(t, math.Abs(root-tc.root), 4*bound,
				"converged root must satisfy the tolerance bound")
		})
	}
}

// TestFindRootFrom_ExactHit checks the fast path: when f(initial) == 0
// exactly, the guess is returned after a single evaluation.
func TestFindRootFrom_ExactHit(t *testing.T) {
	s := rootfind.Default()

	var evals int
	f := counting(func(x float64) float64 { return x - 1 }, &evals)

	root, err := s.FindRootFrom(f, 0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, root, "exact zero at the guess must be returned as-is")
	assert.Equal(t, 1, evals, "no evaluations beyond the first probe")
}

// TestFindRoot_EndpointHit checks the endpoint fast paths of the bracket
// setup and their evaluation budget.
func TestFindRoot_EndpointHit(t *testing.T) {
	s := newSolver(t, 1e-10, 1e-10, 1e-14)

	var evals int
	f := counting(func(x float64) float64 { return x }, &evals)

	// f(min) == 0: probes are f(initial), f(min).
	root, err := s.FindRootFrom(f, 0, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, root)
	assert.Equal(t, 2, evals, "min endpoint hit costs exactly two evaluations")

	evals = 0
	g := counting(func(x float64) float64 { return x - 4 }, &evals)

	// f(max) == 0: probes are f(initial), f(min), f(max).
	root, err = s.FindRootFrom(g, 0, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, root)
	assert.Equal(t, 3, evals, "max endpoint hit costs exactly three evaluations")
}

// TestFindRoot_InvalidInterval verifies that a reversed interval fails
// with IntervalError carrying both bounds, regardless of f.
func TestFindRoot_InvalidInterval(t *testing.T) {
	s := rootfind.Default()

	var evals int
	f := counting(func(x float64) float64 { return x }, &evals)

	_, err := s.FindRoot(f, 5, 1)
	require.Error(t, err)

	var ie rootfind.IntervalError
	require.True(t, errors.As(err, &ie), "error must be IntervalError")
	assert.Equal(t, 5.0, ie.Min)
	assert.Equal(t, 1.0, ie.Max)
	assert.Zero(t, evals, "f must not be evaluated for an invalid interval")
}

// TestFindRootFrom_GuessOutOfRange verifies the out-of-range guess error
// and its diagnostic payload.
func TestFindRootFrom_GuessOutOfRange(t *testing.T) {
	s := rootfind.Default()

	_, err := s.FindRootFrom(func(x float64) float64 { return x }, 0, 7, 5)
	require.Error(t, err)

	var oe rootfind.OutOfRangeError
	require.True(t, errors.As(err, &oe), "error must be OutOfRangeError")
	assert.Equal(t, 7.0, oe.Initial)
	assert.Equal(t, 0.0, oe.Min)
	assert.Equal(t, 5.0, oe.Max)
}

// TestFindRoot_NoBracketing verifies the failure on intervals that do not
// bracket a sign change.
func TestFindRoot_NoBracketing(t *testing.T) {
	s := newSolver(t, 1e-10, 1e-10, 1e-14)

	// x^2 + 1 has no real root at all.
	_, err := s.FindRoot(func(x float64) float64 { return x*x + 1 }, -1, 1)
	var be rootfind.BracketingError
	require.True(t, errors.As(err, &be), "error must be BracketingError")
	assert.Equal(t, -1.0, be.Min)
	assert.Equal(t, 2.0, be.FMin)
	assert.Equal(t, 1.0, be.Max)
	assert.Equal(t, 2.0, be.FMax)

	// x^2 - 2 has roots, but none of the probed points around the default
	// midpoint 0 shows a sign change on [-1, 1]: f is negative at -1, 0, 1.
	_, err = s.FindRoot(func(x float64) float64 { return x*x - 2 }, -1, 1)
	require.True(t, errors.As(err, &be), "error must be BracketingError")
}

// TestFindRoot_NaNRoutesToBracketingFailure documents the NaN policy: a
// callback returning NaN fails every sign-product test and surfaces as a
// bracketing failure rather than being iterated on.
func TestFindRoot_NaNRoutesToBracketingFailure(t *testing.T) {
	s := rootfind.Default()

	_, err := s.FindRoot(func(float64) float64 { return math.NaN() }, -1, 1)
	var be rootfind.BracketingError
	require.True(t, errors.As(err, &be), "NaN everywhere must surface as BracketingError")
	assert.True(t, math.IsNaN(be.FMin))
	assert.True(t, math.IsNaN(be.FMax))
}

// TestFindRoot_NonSmooth exercises a continuous but non-differentiable
// function; Brent needs continuity only.
func TestFindRoot_NonSmooth(t *testing.T) {
	s := newSolver(t, 1e-12, 1e-12, 1e-15)

	f := func(x float64) float64 {
		if x < 0.5 {
			return x - 0.5
		}

		return 3 * (x - 0.5)
	}
	root, err := s.FindRoot(f, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, root, 1e-10, "kink at the root must not disturb convergence")
}

// TestFindRoot_TightTolerances pushes the tolerances to a few ulps and
// verifies the solver still terminates with a high-quality root.
func TestFindRoot_TightTolerances(t *testing.T) {
	s := newSolver(t, 4e-16, 1e-300, 0)

	root, err := s.FindRoot(func(x float64) float64 { return x*x*x - 2 }, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Cbrt(2), root, 1e-14)
}

// TestSolver_IndependentSearches runs the same Solver concurrently to
// confirm no iteration state leaks between calls.
func TestSolver_IndependentSearches(t *testing.T) {
	s := rootfind.Default()

	const workers = 8
	done := make(chan error, workers)
	for w := 0; w < workers; w++ {
		shift := 0.1 * float64(w+1)
		go func() {
			root, err := s.FindRoot(func(x float64) float64 { return x - shift }, -1, 2)
			if err == nil && math.Abs(root-shift) > 1e-6 {
				err = fmt.Errorf("root %g, want %g", root, shift)
			}
			done <- err
		}()
	}
	for w := 0; w < workers; w++ {
		assert.NoError(t, <-done)
	}
}
