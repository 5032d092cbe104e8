package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-datafilter/filter/kernel"
)

func ExampleKernel_Normalize() {
	k, _ := kernel.Binomial(5)
	n := k.Normalize()

	fmt.Println(k.Weights(), k.Offset())
	fmt.Printf("%.4f\n", n.Weights())
	fmt.Printf("sum %.1f\n", n.Sum())

	// Output:
	// [1 4 6 4 1] 2
	// [0.0625 0.2500 0.3750 0.2500 0.0625]
	// sum 1.0
}
