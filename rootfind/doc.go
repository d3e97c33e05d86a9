// Package rootfind locates real roots of continuous scalar functions
// using Brent's method.
//
// It combines three classic techniques inside one loop:
//
//   - Bisection — always available, halves the bracket, linear convergence.
//   - Secant (linear interpolation) — used when only two distinct
//     abscissas have been seen.
//   - Inverse quadratic interpolation — used when three distinct points
//     are available; superlinear convergence near a simple root.
//
// The method never loses its bracket: at every step the current best
// estimate b and its partner c satisfy sign(f(b)) ≠ sign(f(c)), so for a
// continuous f a root always lies between them. Interpolated steps are
// accepted only when they make adequate progress; otherwise the solver
// falls back to bisection, which guarantees termination.
//
// A Solver carries three tolerances fixed at construction:
//
//   - relative accuracy ε — scales with the magnitude of the candidate root
//   - absolute accuracy t — a fixed floor on the bracket half-width
//   - function-value accuracy — |f(x)| at or below it counts as a root
//
// The convergence tolerance at estimate x is tol = 2·ε·|x| + t.
// A Solver is immutable and safe for concurrent searches: every call to
// FindRoot / FindRootFrom owns its own iteration state.
//
// The interval supplied by the caller must bracket the root (or contain a
// point whose function value is already within the function-value
// accuracy). There is no automatic bracket discovery, no derivative use,
// and no iteration cap: termination follows from the finite resolution of
// float64 together with the strictly positive tolerance floor.
//
// Reference: Richard P. Brent, “Algorithms for Minimization Without
// Derivatives”, Dover, 2002, chapter 4.
package rootfind
