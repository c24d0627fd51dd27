// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"github.com/avdva/extended/internal/numutil"

	"golang.org/x/exp/constraints"
)

// AddAssign sets v to v + other.
// +inf + -inf and -inf + +inf are indeterminate. On error v is not changed.
func (v *Value[T]) AddAssign(other Value[T]) error {
	if err := checkBoth("add", *v, other); err != nil {
		return err
	}
	switch {
	case v.state == finite && other.state == finite:
		v.v += other.v
	case v.state == finite: // x + inf = inf
		*v = Value[T]{state: other.state}
	case other.state == finite || other.state == v.state: // inf + x = inf
	default:
		return indeterminate("add", "%s + %s", *v, other)
	}
	return nil
}

// SubAssign sets v to v - other.
// +inf - +inf and -inf - -inf are indeterminate. On error v is not changed.
func (v *Value[T]) SubAssign(other Value[T]) error {
	if err := checkBoth("sub", *v, other); err != nil {
		return err
	}
	switch {
	case v.state == finite && other.state == finite:
		v.v -= other.v
	case v.state == finite: // x - inf = -inf
		*v = Value[T]{state: -other.state}
	case other.state == finite || other.state != v.state: // inf - x = inf
	default:
		return indeterminate("sub", "%s - %s", *v, other)
	}
	return nil
}

// MulAssign sets v to v * other.
// Zero times an infinity is zero. On error v is not changed.
func (v *Value[T]) MulAssign(other Value[T]) error {
	if err := checkBoth("mul", *v, other); err != nil {
		return err
	}
	switch {
	case v.state == finite && other.state == finite:
		v.v *= other.v
	case v.state == finite:
		if sign := numutil.Sign(v.v); sign != 0 {
			*v = Value[T]{state: int8(sign) * other.state}
		}
	case other.state == finite:
		if sign := numutil.Sign(other.v); sign != 0 {
			v.state *= int8(sign)
		} else {
			*v = Value[T]{}
		}
	default:
		v.state *= other.state
	}
	return nil
}

// QuoAssign sets v to v / other.
// Any finite value divided by an infinity is zero.
// Division by zero and inf / inf are indeterminate: x / 0 returns an error
// matching ErrIndeterminate, not ErrFiniteness, for finite and infinite x alike.
// On error v is not changed.
func (v *Value[T]) QuoAssign(other Value[T]) error {
	if err := checkBoth("quo", *v, other); err != nil {
		return err
	}
	switch {
	case other.IsZero():
		return indeterminate("quo", "%s / 0", *v)
	case v.state == finite && other.state == finite:
		v.v /= other.v
	case v.state == finite:
		*v = Value[T]{}
	case other.state == finite:
		v.state *= int8(numutil.Sign(other.v))
	default:
		return indeterminate("quo", "%s / %s", *v, other)
	}
	return nil
}

// Add returns v + other.
func (v Value[T]) Add(other Value[T]) (Value[T], error) {
	if err := v.AddAssign(other); err != nil {
		return Value[T]{}, err
	}
	return v, nil
}

// Sub returns v - other.
func (v Value[T]) Sub(other Value[T]) (Value[T], error) {
	if err := v.SubAssign(other); err != nil {
		return Value[T]{}, err
	}
	return v, nil
}

// Mul returns v * other.
func (v Value[T]) Mul(other Value[T]) (Value[T], error) {
	if err := v.MulAssign(other); err != nil {
		return Value[T]{}, err
	}
	return v, nil
}

// Quo returns v / other.
func (v Value[T]) Quo(other Value[T]) (Value[T], error) {
	if err := v.QuoAssign(other); err != nil {
		return Value[T]{}, err
	}
	return v, nil
}

// MustAdd returns v + other, or panics, if the result is indeterminate.
func (v Value[T]) MustAdd(other Value[T]) Value[T] {
	return must(v.Add(other))
}

// MustSub returns v - other, or panics, if the result is indeterminate.
func (v Value[T]) MustSub(other Value[T]) Value[T] {
	return must(v.Sub(other))
}

// MustMul returns v * other, or panics on a corrupted value.
func (v Value[T]) MustMul(other Value[T]) Value[T] {
	return must(v.Mul(other))
}

// MustQuo returns v / other, or panics, if the result is indeterminate.
func (v Value[T]) MustQuo(other Value[T]) Value[T] {
	return must(v.Quo(other))
}

// RemAssign sets v to v % other. Both values must be finite.
// Returns an error matching ErrIndeterminate, if other is zero. On error v is not changed.
func RemAssign[T constraints.Integer](v *Value[T], other Value[T]) error {
	if err := checkBoth("rem", *v, other); err != nil {
		return err
	}
	if v.state != finite || other.state != finite {
		return notFinite("rem", "modular arithmetic requires finite values")
	}
	if other.v == 0 {
		return indeterminate("rem", "%s %% 0", *v)
	}
	v.v %= other.v
	return nil
}

// Rem returns a % b. Both values must be finite.
func Rem[T constraints.Integer](a, b Value[T]) (Value[T], error) {
	if err := RemAssign(&a, b); err != nil {
		return Value[T]{}, err
	}
	return a, nil
}

// Sum returns the sum of the values. The sum of no values is zero.
func Sum[T Number](values ...Value[T]) (Value[T], error) {
	var result Value[T]
	for _, v := range values {
		if err := result.AddAssign(v); err != nil {
			return Value[T]{}, err
		}
	}
	return result, nil
}

// Product returns the product of the values. The product of no values is one.
func Product[T Number](values ...Value[T]) (Value[T], error) {
	result := Finite[T](1)
	for _, v := range values {
		if err := result.MulAssign(v); err != nil {
			return Value[T]{}, err
		}
	}
	return result, nil
}

func checkBoth[T Number](op string, a, b Value[T]) error {
	if err := a.check(op); err != nil {
		return err
	}
	return b.check(op)
}

func must[T Number](v Value[T], err error) Value[T] {
	if err != nil {
		panic(err)
	}
	return v
}
