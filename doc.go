// Package numkit is a small toolbox of scalar numeric primitives —
// guaranteed-convergent root finding plus a few self-contained
// companions (exact rationals, the error function family, factorials).
//
// 🚀 What is numkit?
//
//	A focused, dependency-light library that brings together:
//		• Root finding: Brent's method — bisection + secant + inverse
//		  quadratic interpolation, bracket never lost, no derivatives needed
//		• Exact rationals: overflow-checked int64 fractions with
//		  continued-fraction conversion from float64
//		• Special functions: erf, erfc and their inverses (Boost-quality
//		  rational approximations)
//		• Combinatorics: factorial and log-factorial with optional caching
//
// ✨ Why choose numkit?
//
//   - Deterministic – no hidden randomness, no time-based behavior
//   - Safe by contract – sentinel & typed errors, no panics in library code
//   - Pure Go – no cgo, no hidden deps
//   - Independent pieces – each package stands alone; use only what you need
//
// Under the hood, everything is organized into per-topic subpackages:
//
//	rootfind/  — Brent solver: FindRoot / FindRootFrom over a bracketing interval
//	fraction/  — exact int64 rationals with overflow-checked arithmetic
//	special/   — erf, erfc, inverse erf/erfc
//	factorial/ — factorial & log-factorial values with optional precomputed cache
//
// Quick taste:
//
//	s := rootfind.Default()
//	x, err := s.FindRoot(math.Cos, 0, 3) // ≈ π/2
//
// The cmd/rootsolve binary wraps the solver behind a tiny expression CLI
// for quick experiments from the shell.
//
//	go get github.com/katalvlaran/numkit/rootfind
package numkit
