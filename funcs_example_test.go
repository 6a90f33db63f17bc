package charter_test

import (
	"fmt"

	charter "github.com/Duccs/Math-Charter"
)

func ExampleParse() {
	e := charter.Parse("-x^2 + 2x")
	fmt.Println(e.PostfixString())
	for _, x := range []float32{0, 1, 3} {
		fmt.Println(x, e.Eval(x))
	}

	// Output:
	// 0 x 2 ^ - 2 x * +
	// 0 0
	// 1 1
	// 3 -3
}

func ExampleExpr_Err() {
	e := charter.Parse("sin(x")
	fmt.Println(e.Valid())
	fmt.Println(e.Err())

	// Output:
	// false
	// 1:4: mismatched parentheses: open bracket ( with no close bracket
}

func ExampleFreeVariable() {
	r, err := charter.Eval("t^2 / 2", 3, charter.FreeVariable("t"))
	fmt.Println(r, err)
	_, err = charter.Eval("x", 3, charter.FreeVariable("t"))
	fmt.Println(err)

	// Output:
	// 4.5 <nil>
	// 1:1: variable "x" in expression of "t"
}
