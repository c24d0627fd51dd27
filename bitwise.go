// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"golang.org/x/exp/constraints"
)

// Not returns ^v. v must be finite.
func Not[T constraints.Integer](v Value[T]) (Value[T], error) {
	if err := v.check("not"); err != nil {
		return Value[T]{}, err
	}
	if v.state != finite {
		return Value[T]{}, notFinite("not", "bitwise not requires finite values")
	}
	return Finite(^v.v), nil
}

// And returns a & b. Both values must be finite.
func And[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := bothFinite("and", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v & b.v), nil
}

// Or returns a | b. Both values must be finite.
func Or[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := bothFinite("or", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v | b.v), nil
}

// Xor returns a ^ b. Both values must be finite.
func Xor[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := bothFinite("xor", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v ^ b.v), nil
}

// AndNot returns a &^ b. Both values must be finite.
func AndNot[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := bothFinite("and not", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v &^ b.v), nil
}

// Lsh returns a << b. Both values must be finite, b must not be negative.
// Shifts by the bit size of T or more produce zero.
func Lsh[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := shiftable("lsh", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v << b.v), nil
}

// Rsh returns a >> b. Both values must be finite, b must not be negative.
// The shift is arithmetic for signed types.
func Rsh[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := shiftable("rsh", a, b); err != nil {
		return Value[T]{}, err
	}
	return Finite(a.v >> b.v), nil
}

func bothFinite[T constraints.Integer](op string, a, b Value[T]) error {
	if err := checkBoth(op, a, b); err != nil {
		return err
	}
	if a.state != finite || b.state != finite {
		return notFinite(op, "bitwise "+op+" requires finite values")
	}
	return nil
}

func shiftable[T constraints.Integer](op string, a, b Value[T]) error {
	if err := bothFinite(op, a, b); err != nil {
		return err
	}
	if b.v < 0 {
		return &OpError{Op: op, Kind: ErrShiftCount, Msg: b.String()}
	}
	return nil
}
