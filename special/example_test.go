package special_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/special"
)

// ExampleErf evaluates the probability mass of a standard normal within
// one standard deviation: erf(1/√2) ≈ 68.27%.
func ExampleErf() {
	const invSqrt2 = 0.7071067811865476

	fmt.Printf("%.4f\n", special.Erf(invSqrt2))
	// Output:
	// 0.6827
}

// ExampleErfInv recovers a normal quantile: the z-score enclosing 95%
// of the mass is √2·erfinv(0.95).
func ExampleErfInv() {
	const sqrt2 = 1.4142135623730951

	fmt.Printf("%.4f\n", sqrt2*special.ErfInv(0.95))
	// Output:
	// 1.9600
}
