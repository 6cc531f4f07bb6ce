package fncomb_test

import (
	"fmt"

	"github.com/npillmayer/fncomb"
)

func ExamplePipe() {
	fmt.Println(fncomb.Pipe(inc, double)(3))
	// Output:
	// 8
}

func ExampleCompose() {
	fmt.Println(fncomb.Compose(inc, double)(3))
	// Output:
	// 7
}

func ExampleEvery() {
	inRange := fncomb.Every(
		func(n int) bool { return n > 0 },
		func(n int) bool { return n < 10 },
	)
	fmt.Println(inRange(5), inRange(15))
	// Output:
	// true false
}
