package factorial_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/factorial"
)

////////////////////////////////////////////////////////////////////////
// ExampleFactorial_Value - exact small factorials and the float64 edge.
////////////////////////////////////////////////////////////////////////

func ExampleFactorial_Value() {
	f := factorial.New()

	ten, _ := f.Value(10)
	huge, _ := f.Value(171)

	fmt.Println(ten)
	fmt.Println(huge)
	// Output:
	// 3.6288e+06
	// +Inf
}

////////////////////////////////////////////////////////////////////////
// ExampleLogFactorial_Value - log space survives where n! overflows.
////////////////////////////////////////////////////////////////////////

func ExampleLogFactorial_Value() {
	l, _ := factorial.NewLog().WithCache(1000)

	v, _ := l.Value(1000)
	fmt.Printf("%.4f\n", v)
	// Output:
	// 5912.1282
}
