// Command rootsolve finds a root of a single-variable expression on a
// bracketing interval.
//
// Usage:
//
//	rootsolve -f "cos(x) - x" -min 0 -max 1
//	rootsolve -f "x*x*x - 2*x - 5" -min 2 -max 3 -guess 2.1 -abs 1e-12
//
// The expression is written in terms of x and may use sin, cos, tan,
// exp, log, sqrt, abs and pow. On failure the reason is printed to
// stderr and the exit code is non-zero.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/numkit/rootfind"
)

func main() {
	var (
		exprStr = flag.String("f", "", "expression in x to solve f(x) = 0 (required)")
		min     = flag.Float64("min", 0, "lower bound of the search interval")
		max     = flag.Float64("max", 1, "upper bound of the search interval")
		guess   = flag.Float64("guess", math.NaN(), "initial guess inside [min, max] (optional)")
		rel     = flag.Float64("rel", rootfind.DefaultRelativeAccuracy, "relative accuracy")
		abs     = flag.Float64("abs", rootfind.DefaultAbsoluteAccuracy, "absolute accuracy")
		fval    = flag.Float64("fval", rootfind.DefaultFunctionValueAccuracy, "function value accuracy")
	)
	flag.Parse()

	if *exprStr == "" {
		fmt.Fprintln(os.Stderr, "rootsolve: -f is required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := compile(*exprStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootsolve: bad expression: %v\n", err)
		os.Exit(2)
	}

	solver, err := rootfind.New(*rel, *abs, *fval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootsolve: %v\n", err)
		os.Exit(2)
	}

	var root float64
	if math.IsNaN(*guess) {
		root, err = solver.FindRoot(f, *min, *max)
	} else {
		root, err = solver.FindRootFrom(f, *min, *guess, *max)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootsolve: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("root: %.17g\n", root)
	fmt.Printf("f(root): %.6g\n", f(root))
}
