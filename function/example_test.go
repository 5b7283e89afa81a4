package function_test

import (
	"fmt"

	"go.creack.net/fnplot/function"
)

func Example() {
	f, err := function.Compile("1 / (x - 2)")
	if err != nil {
		fmt.Println(err)
		return
	}

	points, err := f.Points(function.Linspace(0, 4, 5))
	for _, p := range points {
		fmt.Printf("(%g, %g)\n", p.X, p.Y)
	}
	if err != nil {
		fmt.Println("skipped:", err.(interface{ WrappedErrors() []error }).WrappedErrors())
	}
	// Output:
	// (0, -0.5)
	// (1, -1)
	// (3, 1)
	// (4, 0.5)
	// skipped: [x=2: 1 / (x - 2): division by zero]
}

func ExampleSession() {
	s := function.NewSession()
	if _, err := s.Define("f = x * x"); err != nil {
		fmt.Println(err)
		return
	}

	g, err := s.Compile("f - 2 * x + 1")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range []float64{0, 1, 2} {
		y, _ := g.Eval(x)
		fmt.Println(y)
	}
	// Output:
	// 1
	// 0
	// 1
}
