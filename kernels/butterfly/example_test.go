package butterfly_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/kernels/butterfly"
)

func ExampleTransform() {
	re := []float64{1, 1, 1, 1}
	im := []float64{0, 0, 0, 0}
	if err := butterfly.Transform(re, im); err != nil {
		panic(err)
	}
	fmt.Println(re)
	// Output:
	// [4 0 0 0]
}

func ExampleBitReverse() {
	idx := []int{0, 1, 2, 3, 4, 5, 6, 7}
	_ = butterfly.BitReverse(idx)
	fmt.Println(idx)
	// Output:
	// [0 4 2 6 1 5 3 7]
}
