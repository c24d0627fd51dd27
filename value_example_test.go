// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"errors"
	"fmt"
)

func ExampleValue() {
	nums := []Value[int]{NegInf[int](), Finite(-42), Finite(0), Finite(42), PosInf[int]()}
	fmt.Println(nums)
	fmt.Println(Min(nums[1], nums[2:]...), Max(nums[0], nums[1:3]...))

	sum, err := Finite(40).Add(Finite(2))
	fmt.Println(sum, err)

	sum, err = PosInf[int]().Add(Finite(2))
	fmt.Println(sum, err)

	// the measure-theoretic convention.
	prod, err := Finite(0).Mul(NegInf[int]())
	fmt.Println(prod, err)

	quo, err := Finite(7).Quo(PosInf[int]())
	fmt.Println(quo, err)

	_, err = PosInf[int]().Add(NegInf[int]())
	fmt.Println(errors.Is(err, ErrIndeterminate), err)

	_, err = And(Finite(12), PosInf[int]())
	fmt.Println(errors.Is(err, ErrFiniteness), err)

	fmt.Println(Convert[uint8](Finite(300)), Convert[float32](NegInf[int]()))

	// Output:
	// [-inf -42 0 42 +inf]
	// -42 0
	// 42 <nil>
	// +inf <nil>
	// 0 <nil>
	// 0 <nil>
	// true extended: add: indeterminate form: +inf + -inf
	// true extended: and: finite error: bitwise and requires finite values
	// 44 -inf
}

func ExampleParse() {
	v, err := Parse[float64](" 2.5 ")
	fmt.Printf("%v %.3f %v\n", v, v, err)

	// infinities can't be parsed.
	_, err = Parse[float64]("+inf")
	fmt.Println(errors.Is(err, ErrSyntax))

	// Output:
	// 2.5 2.500 <nil>
	// true
}
