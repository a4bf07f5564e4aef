package fastfloat_test

import (
	"fmt"

	fastfloat "github.com/vkahl/fast-floats"
)

func ExampleF64_Add() {
	x := fastfloat.F64(2)
	fmt.Println(x.Add(fastfloat.F64(1)))
	fmt.Println(x.AddScalar(0.5))
	// Output:
	// 3
	// 2.5
}

func ExampleSum() {
	total := fastfloat.Sum([]float64{1, 2, 3, 4, 5})
	fmt.Println(total)
	// Output: 15
}

func ExampleDot() {
	d := fastfloat.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	fmt.Println(d)
	// Output: 32
}
