// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package extended implements the extended real number line over Go's primitive
// numeric types. A Value is either a finite number, or one of the two infinities, +inf and -inf.
//
// The order is total: -inf < every finite value < +inf.
// Arithmetic follows measure-theoretic rules, so 0 * (±inf) = 0.
// Forms without a value, like +inf + -inf or inf / inf, are reported as errors
// matching ErrIndeterminate. Operations, which need finite operands, like
// remainder and bitwise operations, report errors matching ErrFiniteness.
//
// Value is a value type; the zero Value is a finite zero.
// Finite arithmetic follows Go rules for T, so integer overflow wraps around.
package extended

import (
	"fmt"

	"github.com/avdva/extended/internal/numutil"

	"golang.org/x/exp/constraints"
)

// Number is a type constraint for all types, that can be extended.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is a type constraint for types, that support negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Infinity designates the kind of an infinite value.
type Infinity int8

const (
	// Neg is the negative infinity.
	Neg Infinity = -1
	// Pos is the positive infinity.
	Pos Infinity = 1
)

// String returns "+inf" or "-inf".
func (k Infinity) String() string {
	switch k {
	case Pos:
		return "+inf"
	case Neg:
		return "-inf"
	default:
		return fmt.Sprintf("Infinity(%d)", int8(k))
	}
}

func (k Infinity) state() int8 {
	switch k {
	case Pos:
		return posInf
	case Neg:
		return negInf
	default:
		panic(fmt.Sprintf("extended: invalid infinity %d", int8(k)))
	}
}

// states are ordered in the same way as the values they represent,
// so comparing states orders any pair of values, which are not both finite.
const (
	negInf int8 = -1
	finite int8 = 0
	posInf int8 = 1
)

// Value is an extended number.
// The payload of an infinite value is always zero.
type Value[T Number] struct {
	v     T
	state int8
}

// Finite returns a finite value.
// v must not be an IEEE infinity or a NaN. Such a payload stays finite and can't be
// marshaled to json; use PosInf and NegInf instead.
func Finite[T Number](v T) Value[T] {
	return Value[T]{v: v}
}

// Inf returns an infinite value of the given kind.
// Inf panics if k is neither Pos nor Neg.
func Inf[T Number](k Infinity) Value[T] {
	return Value[T]{state: k.state()}
}

// PosInf returns +inf.
func PosInf[T Number]() Value[T] {
	return Value[T]{state: posInf}
}

// NegInf returns -inf.
func NegInf[T Number]() Value[T] {
	return Value[T]{state: negInf}
}

// Set sets v to other.
func (v *Value[T]) Set(other Value[T]) {
	*v = other
}

// SetFinite sets v to a finite value. The same restrictions as for Finite apply.
func (v *Value[T]) SetFinite(f T) {
	*v = Finite(f)
}

// SetInf sets v to an infinity.
// SetInf panics if k is neither Pos nor Neg.
func (v *Value[T]) SetInf(k Infinity) {
	*v = Inf[T](k)
}

// IsFinite returns true, if v is finite.
func (v Value[T]) IsFinite() bool {
	return v.state == finite
}

// IsInf returns true, if v is either +inf, or -inf.
func (v Value[T]) IsInf() bool {
	return v.state != finite
}

// IsPosInf returns true, if v is +inf.
func (v Value[T]) IsPosInf() bool {
	return v.state == posInf
}

// IsNegInf returns true, if v is -inf.
func (v Value[T]) IsNegInf() bool {
	return v.state == negInf
}

// FiniteValue returns the finite value.
// Returns an error matching ErrFiniteness, if v is infinite.
func (v Value[T]) FiniteValue() (T, error) {
	if err := v.check("value"); err != nil {
		return v.v, err
	}
	if v.state != finite {
		return v.v, notFinite("value", "value is infinite")
	}
	return v.v, nil
}

// MustFiniteValue returns the finite value, or panics, if v is infinite.
func (v Value[T]) MustFiniteValue() T {
	f, err := v.FiniteValue()
	if err != nil {
		panic(err)
	}
	return f
}

// InfinityKind returns the kind of an infinite value.
// Returns an error matching ErrFiniteness, if v is finite.
func (v Value[T]) InfinityKind() (Infinity, error) {
	switch v.state {
	case posInf:
		return Pos, nil
	case negInf:
		return Neg, nil
	case finite:
		return 0, notFinite("infinity kind", "value is finite")
	default:
		return 0, invalidState("infinity kind", v.state)
	}
}

// Convert converts v to Value[S].
// Infinities keep their sign, finite values are converted following Go conversion rules.
func Convert[S, T Number](v Value[T]) Value[S] {
	v.mustBeValid("convert")
	if v.state != finite {
		return Value[S]{state: v.state}
	}
	return Value[S]{v: S(v.v)}
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
// For infinities the sign of the infinity is returned.
func (v Value[T]) Sign() int {
	v.mustBeValid("sign")
	if v.state == finite {
		return numutil.Sign(v.v)
	}
	return int(v.state)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value[T]) Cmp(other Value[T]) int {
	v.mustBeValid("cmp")
	other.mustBeValid("cmp")
	if v.state == finite && other.state == finite {
		return numutil.Cmp(v.v, other.v)
	}
	return numutil.Cmp(v.state, other.state)
}

// Eq returns a == b. Infinities of the same sign are equal.
func (v Value[T]) Eq(other Value[T]) bool {
	return v.Cmp(other) == 0
}

// Ne returns a != b.
func (v Value[T]) Ne(other Value[T]) bool {
	return v.Cmp(other) != 0
}

// Lt returns a < b.
func (v Value[T]) Lt(other Value[T]) bool {
	return v.Cmp(other) < 0
}

// Le returns a <= b.
func (v Value[T]) Le(other Value[T]) bool {
	return v.Cmp(other) <= 0
}

// Gt returns a > b.
func (v Value[T]) Gt(other Value[T]) bool {
	return v.Cmp(other) > 0
}

// Ge returns a >= b.
func (v Value[T]) Ge(other Value[T]) bool {
	return v.Cmp(other) >= 0
}

// Min returns the smallest of the values.
func Min[T Number](first Value[T], rest ...Value[T]) Value[T] {
	result := first
	for _, v := range rest {
		if v.Lt(result) {
			result = v
		}
	}
	return result
}

// Max returns the largest of the values.
func Max[T Number](first Value[T], rest ...Value[T]) Value[T] {
	result := first
	for _, v := range rest {
		if v.Gt(result) {
			result = v
		}
	}
	return result
}

// Plus returns v.
func (v Value[T]) Plus() Value[T] {
	return v
}

// Negate returns -v. The sign of an infinity is flipped.
func Negate[T Signed](v Value[T]) Value[T] {
	v.mustBeValid("negate")
	if v.state == finite {
		return Finite(-v.v)
	}
	return Value[T]{state: -v.state}
}

// Bool returns true if v is infinite or nonzero.
func (v Value[T]) Bool() bool {
	return v.state != finite || v.v != 0
}

// IsZero returns true if v is a finite zero.
func (v Value[T]) IsZero() bool {
	return v.state == finite && v.v == 0
}

// Inc returns v + 1. Infinities are returned as is.
func (v Value[T]) Inc() Value[T] {
	if v.state == finite {
		v.v++
	}
	return v
}

// Dec returns v - 1. Infinities are returned as is.
func (v Value[T]) Dec() Value[T] {
	if v.state == finite {
		v.v--
	}
	return v
}

// PreInc increments v and returns the new value.
func (v *Value[T]) PreInc() Value[T] {
	*v = v.Inc()
	return *v
}

// PostInc increments v and returns the value it had before.
func (v *Value[T]) PostInc() Value[T] {
	old := *v
	*v = v.Inc()
	return old
}

// PreDec decrements v and returns the new value.
func (v *Value[T]) PreDec() Value[T] {
	*v = v.Dec()
	return *v
}

// PostDec decrements v and returns the value it had before.
func (v *Value[T]) PostDec() Value[T] {
	old := *v
	*v = v.Dec()
	return old
}

func (v Value[T]) check(op string) error {
	if v.state < negInf || v.state > posInf {
		return invalidState(op, v.state)
	}
	return nil
}

func (v Value[T]) mustBeValid(op string) {
	if err := v.check(op); err != nil {
		panic(err)
	}
}
