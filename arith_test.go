// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	var (
		pos    = Finite[int8](42)
		neg    = Finite[int8](-42)
		zero   = Finite[int8](0)
		posInf = PosInf[int8]()
		negInf = NegInf[int8]()
	)

	a.Equal(zero, pos.MustAdd(neg))
	a.Equal(zero, neg.MustAdd(pos))
	a.Equal(pos.MustSub(neg), Negate(neg.MustSub(pos)))
	a.Equal(pos, pos.MustAdd(zero))
	a.Equal(neg, neg.MustAdd(zero))

	for i, v := range []Value[int8]{pos, neg, zero, posInf} {
		t.Run(fmt.Sprintf("pos-%d", i), func(t *testing.T) {
			a.Equal(posInf, posInf.MustAdd(v))
			a.Equal(posInf, v.MustSub(negInf))
			a.Equal(negInf, negInf.MustSub(v))
		})
	}
	for i, v := range []Value[int8]{pos, neg, zero, negInf} {
		t.Run(fmt.Sprintf("neg-%d", i), func(t *testing.T) {
			a.Equal(posInf, posInf.MustSub(v))
			a.Equal(negInf, v.MustSub(posInf))
			a.Equal(negInf, v.MustAdd(negInf))
		})
	}

	tests := []struct {
		a, b Value[int8]
		add  bool
		msg  string
	}{
		{posInf, negInf, true, "+inf + -inf"},
		{negInf, posInf, true, "-inf + +inf"},
		{posInf, posInf, false, "+inf - +inf"},
		{negInf, negInf, false, "-inf - -inf"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var err error
			if test.add {
				_, err = test.a.Add(test.b)
			} else {
				_, err = test.a.Sub(test.b)
			}
			if a.ErrorIs(err, ErrIndeterminate) {
				a.Contains(err.Error(), test.msg)
			}
		})
	}
	a.Panics(func() {
		posInf.MustAdd(negInf)
	})
	a.Panics(func() {
		negInf.MustSub(negInf)
	})
}

func TestAdditiveInverse(t *testing.T) {
	a := assert.New(t)
	for _, x := range []int64{math.MinInt64 + 1, -1000, -1, 0, 1, 1000, math.MaxInt64} {
		a.Equal(Finite[int64](0), Finite(x).MustAdd(Finite(-x)))
	}
	// finite integer arithmetic wraps around.
	a.Equal(Finite[int64](math.MinInt64), Finite[int64](math.MaxInt64).MustAdd(Finite[int64](1)))
	a.Equal(Finite[uint8](255), Finite[uint8](0).MustSub(Finite[uint8](1)))
}

func TestMulQuo(t *testing.T) {
	a := assert.New(t)
	var (
		pos    = Finite[int16](42)
		neg    = Finite[int16](-42)
		posInf = PosInf[int16]()
		negInf = NegInf[int16]()
		zero   = Finite[int16](0)
		one    = Finite[int16](1)
	)
	for i, v := range []Value[int16]{pos, neg, posInf, negInf, zero, one} {
		t.Run(fmt.Sprintf("identity-%d", i), func(t *testing.T) {
			a.Equal(v, v.MustMul(one))
			a.Equal(v, one.MustMul(v))
			a.Equal(zero, v.MustMul(zero))
			a.Equal(zero, zero.MustMul(v))
		})
	}
	for i, v := range []Value[int16]{pos, neg, posInf, negInf, one} {
		t.Run(fmt.Sprintf("quo-one-%d", i), func(t *testing.T) {
			a.Equal(v, v.MustQuo(one))
		})
	}
	prod := Finite[int16](42 * 42)
	a.Equal(prod, Negate(pos).MustMul(neg))
	a.Equal(Negate(prod), pos.MustMul(neg))
	a.Equal(Negate(one), pos.MustQuo(neg))
	a.Equal(one, neg.MustQuo(Negate(pos)))

	for i, inf := range []Value[int16]{posInf, negInf} {
		t.Run(fmt.Sprintf("inf-%d", i), func(t *testing.T) {
			a.Equal(inf, inf.MustQuo(pos))
			a.Equal(Negate(inf), inf.MustQuo(neg))
			for _, v := range []Value[int16]{pos, posInf} {
				a.Equal(inf, inf.MustMul(v))
				a.Equal(inf, v.MustMul(inf))
			}
			for _, v := range []Value[int16]{neg, negInf} {
				a.Equal(Negate(inf), v.MustMul(inf))
				a.Equal(Negate(inf), inf.MustMul(v))
			}
		})
	}
	for i, v := range []Value[int16]{pos, neg, zero, one} {
		t.Run(fmt.Sprintf("by-inf-%d", i), func(t *testing.T) {
			a.Equal(zero, v.MustQuo(posInf))
			a.Equal(zero, v.MustQuo(negInf))
		})
	}
}

func TestMulZeroTimesInfinity(t *testing.T) {
	a := assert.New(t)
	// measure-theoretic convention: 0 * (±inf) = 0.
	for _, inf := range []Value[float64]{PosInf[float64](), NegInf[float64]()} {
		a.Equal(Finite(0.0), Finite(0.0).MustMul(inf))
		a.Equal(Finite(0.0), inf.MustMul(Finite(0.0)))
	}
	a.Equal(Finite[uint](0), Finite[uint](0).MustMul(PosInf[uint]()))
	a.Equal(PosInf[uint](), Finite[uint](5).MustMul(PosInf[uint]()))
}

func TestQuoErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b Value[int]
		msg  string
	}{
		{PosInf[int](), PosInf[int](), "+inf / +inf"},
		{PosInf[int](), NegInf[int](), "+inf / -inf"},
		{NegInf[int](), PosInf[int](), "-inf / +inf"},
		{NegInf[int](), NegInf[int](), "-inf / -inf"},
		{PosInf[int](), Finite(0), "+inf / 0"},
		{NegInf[int](), Finite(0), "-inf / 0"},
		{Finite(42), Finite(0), "42 / 0"},
		{Finite(0), Finite(0), "0 / 0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := test.a
			err := x.QuoAssign(test.b)
			if a.ErrorIs(err, ErrIndeterminate) {
				a.Contains(err.Error(), test.msg)
			}
			a.NotErrorIs(err, ErrFiniteness)
			a.Equal(test.a, x)
			a.Panics(func() {
				test.a.MustQuo(test.b)
			})
		})
	}
	// floats don't produce native infinities either.
	_, err := Finite(1.0).Quo(Finite(0.0))
	a.ErrorIs(err, ErrIndeterminate)
}

func TestRem(t *testing.T) {
	a := assert.New(t)
	r, err := Rem(Finite(17), Finite(5))
	if a.NoError(err) {
		a.Equal(Finite(2), r)
	}
	r, err = Rem(Finite(-17), Finite(5))
	if a.NoError(err) {
		a.Equal(Finite(-2), r)
	}

	v := Finite[uint32](100)
	if a.NoError(RemAssign(&v, Finite[uint32](7))) {
		a.Equal(Finite[uint32](2), v)
	}

	for i, test := range []struct {
		a, b Value[int]
		kind error
	}{
		{PosInf[int](), Finite(3), ErrFiniteness},
		{Finite(3), NegInf[int](), ErrFiniteness},
		{NegInf[int](), PosInf[int](), ErrFiniteness},
		{Finite(3), Finite(0), ErrIndeterminate},
	} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := test.a
			a.ErrorIs(RemAssign(&x, test.b), test.kind)
			a.Equal(test.a, x)
		})
	}
}

func TestSumProduct(t *testing.T) {
	a := assert.New(t)
	s, err := Sum[int]()
	if a.NoError(err) {
		a.Equal(Finite(0), s)
	}
	p, err := Product[int]()
	if a.NoError(err) {
		a.Equal(Finite(1), p)
	}

	s, err = Sum(Finite(1), Finite(2), Finite(-10))
	if a.NoError(err) {
		a.Equal(Finite(-7), s)
	}
	s, err = Sum(Finite(1), PosInf[int](), Finite(-10))
	if a.NoError(err) {
		a.Equal(PosInf[int](), s)
	}
	_, err = Sum(Finite(1), PosInf[int](), NegInf[int]())
	a.ErrorIs(err, ErrIndeterminate)

	p, err = Product(Finite(2), Finite(-3), Finite(4))
	if a.NoError(err) {
		a.Equal(Finite(-24), p)
	}
	p, err = Product(Finite(-2), PosInf[int]())
	if a.NoError(err) {
		a.Equal(NegInf[int](), p)
	}
	p, err = Product(PosInf[int](), Finite(0), Finite(5))
	if a.NoError(err) {
		a.Equal(Finite(0), p)
	}
}

func TestOpError(t *testing.T) {
	a := assert.New(t)
	_, err := PosInf[int]().Add(NegInf[int]())
	var opErr *OpError
	if a.True(errors.As(err, &opErr)) {
		a.Equal("add", opErr.Op)
		a.Equal(ErrIndeterminate, opErr.Kind)
		a.Equal("+inf + -inf", opErr.Msg)
	}
	a.EqualError(err, "extended: add: indeterminate form: +inf + -inf")
	a.False(errors.Is(err, ErrFiniteness))
}
