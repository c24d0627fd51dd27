// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package selfcheck contains named verification routines for extended values,
// which can be run outside of the go test tool, for instance, by a command-line binary.
package selfcheck

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/avdva/extended"
)

var (
	// ErrCheckFailed is returned when a check finds a wrong result.
	ErrCheckFailed = errors.New("check failed")
	// ErrPanic is returned when a check panics unexpectedly.
	ErrPanic = errors.New("check panicked")
)

// Check is a named verification routine.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of a single check.
type Result struct {
	Name string
	// Err is nil, if the check succeeded.
	Err error
}

func (r Result) String() string {
	if r.Err == nil {
		return r.Name + " succeeded"
	}
	if errors.Is(r.Err, ErrCheckFailed) {
		return r.Name + " failed: " + r.Err.Error()
	}
	return r.Name + " failed internally: " + r.Err.Error()
}

// Report holds the results of all checks in the order they were run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK returns true, if all checks succeeded.
func (r Report) OK() bool {
	return r.Failed == 0
}

// String returns the summary line, like "7 out of 7 checks passed".
func (r Report) String() string {
	return fmt.Sprintf("%d out of %d checks passed", r.Passed, len(r.Results))
}

// Suite returns the default set of checks.
func Suite() []Check {
	return []Check{
		{Name: "basic functionality", Run: basic},
		{Name: "comparison", Run: comparison},
		{Name: "unary operators", Run: unary},
		{Name: "addition and subtraction", Run: addSubtract},
		{Name: "multiplication and division", Run: mulQuo},
		{Name: "finite value operations", Run: finiteOps},
		{Name: "text formatting and parsing", Run: text},
	}
}

// Run runs the checks sequentially. A panic inside a check is reported as its failure.
func Run(checks []Check) Report {
	report := Report{Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		res := Result{Name: c.Name, Err: runOne(c)}
		if res.Err == nil {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func runOne(c Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return c.Run()
}

// expectation collects the first failed condition of a check.
type expectation struct {
	err error
}

func (e *expectation) that(ok bool, msg string) {
	if e.err == nil && !ok {
		e.err = fmt.Errorf("%w: %s", ErrCheckFailed, msg)
	}
}

func (e *expectation) errorIs(err, target error, msg string) {
	e.that(errors.Is(err, target), msg)
}

// noError records an unexpected error as is, so it's reported as an internal failure.
func (e *expectation) noError(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

func basic() error {
	var e expectation

	var empty extended.Value[uint8]
	e.that(empty.IsFinite(), "zero value is finite")
	v, err := empty.FiniteValue()
	e.noError(err)
	e.that(v == 0, "zero value has value 0")
	_, err = empty.InfinityKind()
	e.errorIs(err, extended.ErrFiniteness, "zero value is not infinite")

	fin := extended.Finite[uint](3)
	e.that(fin.IsFinite(), "finite value is finite")
	e.that(fin.MustFiniteValue() == 3, "finite value has value 3")
	_, err = fin.InfinityKind()
	e.errorIs(err, extended.ErrFiniteness, "finite value is not infinite")

	ln := extended.Convert[int64](fin)
	e.that(ln.IsFinite(), "converted value is finite")
	e.that(ln.MustFiniteValue() == 3, "converted value has value 3")

	negInf := extended.NegInf[int]()
	e.that(!negInf.IsFinite(), "-inf is not finite")
	_, err = negInf.FiniteValue()
	e.errorIs(err, extended.ErrFiniteness, "-inf has no finite value")
	kind, err := negInf.InfinityKind()
	e.noError(err)
	e.that(kind == extended.Neg, "-inf has negative infinity kind")

	conv := extended.Convert[int8](negInf)
	e.that(conv.IsNegInf(), "converted -inf is -inf")
	_, err = conv.FiniteValue()
	e.errorIs(err, extended.ErrFiniteness, "converted -inf has no finite value")

	posInf := extended.PosInf[uint8]()
	e.that(!posInf.IsFinite(), "+inf is not finite")
	_, err = posInf.FiniteValue()
	e.errorIs(err, extended.ErrFiniteness, "+inf has no finite value")
	kind, err = posInf.InfinityKind()
	e.noError(err)
	e.that(kind == extended.Pos, "+inf has positive infinity kind")
	return e.err
}

func comparison() error {
	var e expectation
	nums := []extended.Value[int]{extended.NegInf[int](), extended.Finite(-42), {}, extended.Finite(42), extended.PosInf[int]()}
	for i, x := range nums {
		for j, y := range nums {
			switch {
			case i == j:
				e.that(x.Eq(y), "x == x")
				e.that(!x.Ne(y), "!(x != x)")
				e.that(!x.Lt(y), "!(x < x)")
				e.that(x.Le(y), "x <= x")
				e.that(!x.Gt(y), "!(x > x)")
				e.that(x.Ge(y), "x >= x")
			case i < j:
				e.that(!x.Eq(y), "!(a == b)")
				e.that(x.Ne(y), "a != b")
				e.that(x.Lt(y), "a < b")
				e.that(x.Le(y), "a <= b")
				e.that(!x.Gt(y), "!(a > b)")
				e.that(!x.Ge(y), "!(a >= b)")
			default:
				e.that(!x.Eq(y), "!(a == b)")
				e.that(x.Ne(y), "a != b")
				e.that(!x.Lt(y), "!(a < b)")
				e.that(!x.Le(y), "!(a <= b)")
				e.that(x.Gt(y), "a > b")
				e.that(x.Ge(y), "a >= b")
			}
		}
	}
	return e.err
}

func unary() error {
	var e expectation
	nums := []extended.Value[int8]{extended.NegInf[int8](), extended.Finite[int8](-42), {}, extended.Finite[int8](42), extended.PosInf[int8]()}
	incremented := []extended.Value[int8]{extended.NegInf[int8](), extended.Finite[int8](-41), extended.Finite[int8](1), extended.Finite[int8](43), extended.PosInf[int8]()}
	decremented := []extended.Value[int8]{extended.NegInf[int8](), extended.Finite[int8](-43), extended.Finite[int8](-1), extended.Finite[int8](41), extended.PosInf[int8]()}
	for i, x := range nums {
		y := nums[len(nums)-i-1]
		e.that(x.Eq(x.Plus()), "unary plus does nothing")
		e.that(x.Eq(extended.Negate(y)), "negation inverts sign")
		e.that(extended.Negate(x).Eq(y), "negation inverts sign")
		if i == len(nums)/2 {
			e.that(!x.Bool(), "boolean conversion of 0 is false")
		} else {
			e.that(x.Bool(), "boolean conversion of non-zero is true")
		}

		num := x
		e.that(num.PostInc().Eq(x), "postfix increment returns the old value")
		e.that(num.Eq(incremented[i]), "postfix increment adds 1")
		num = x
		e.that(num.PreInc().Eq(incremented[i]), "prefix increment returns the new value")

		num = x
		e.that(num.PostDec().Eq(x), "postfix decrement returns the old value")
		e.that(num.Eq(decremented[i]), "postfix decrement subtracts 1")
		num = x
		e.that(num.PreDec().Eq(decremented[i]), "prefix decrement returns the new value")
	}
	return e.err
}

func addSubtract() error {
	var e expectation
	var (
		pos    = extended.Finite[int8](42)
		neg    = extended.Finite[int8](-42)
		zero   = extended.Finite[int8](0)
		posInf = extended.PosInf[int8]()
		negInf = extended.NegInf[int8]()
	)
	e.that(pos.MustAdd(neg).Eq(zero) && zero.Eq(neg.MustAdd(pos)), "additive inverse yields 0")
	e.that(pos.MustSub(neg).Eq(extended.Negate(neg.MustSub(pos))), "flipping subtraction yields inverse")
	e.that(pos.MustAdd(zero).Eq(pos) && neg.MustAdd(zero).Eq(neg), "adding zero yields original value")

	for _, v := range []extended.Value[int8]{pos, neg, zero, posInf} {
		e.that(posInf.MustAdd(v).Eq(posInf), "+inf is invariant under addition")
		e.that(v.MustSub(negInf).Eq(posInf), "subtracting -inf yields +inf")
		e.that(negInf.MustSub(v).Eq(negInf), "-inf is invariant under subtraction")
	}
	for _, v := range []extended.Value[int8]{pos, neg, zero, negInf} {
		e.that(posInf.MustSub(v).Eq(posInf), "+inf is invariant under subtraction")
		e.that(v.MustSub(posInf).Eq(negInf), "subtracting +inf yields -inf")
		e.that(v.MustAdd(negInf).Eq(negInf), "-inf is invariant under addition")
	}

	_, err := posInf.Sub(posInf)
	e.errorIs(err, extended.ErrIndeterminate, "+inf - +inf is indeterminate")
	_, err = posInf.Add(negInf)
	e.errorIs(err, extended.ErrIndeterminate, "+inf + -inf is indeterminate")
	_, err = negInf.Add(posInf)
	e.errorIs(err, extended.ErrIndeterminate, "-inf + +inf is indeterminate")
	_, err = negInf.Sub(negInf)
	e.errorIs(err, extended.ErrIndeterminate, "-inf - -inf is indeterminate")
	return e.err
}

func mulQuo() error {
	var e expectation
	var (
		pos    = extended.Finite[int16](42)
		neg    = extended.Finite[int16](-42)
		posInf = extended.PosInf[int16]()
		negInf = extended.NegInf[int16]()
		zero   = extended.Finite[int16](0)
		one    = extended.Finite[int16](1)
	)
	for _, v := range []extended.Value[int16]{pos, neg, posInf, negInf, zero, one} {
		e.that(v.MustMul(one).Eq(v) && one.MustMul(v).Eq(v), "multiplying by one yields original value")
		e.that(v.MustMul(zero).Eq(zero) && zero.MustMul(v).Eq(zero), "multiplying by zero yields zero")
		e.that(v.MustQuo(one).Eq(v), "dividing by one yields original value")
	}
	prod := extended.Finite[int16](42 * 42)
	e.that(extended.Negate(pos).MustMul(neg).Eq(prod) && pos.MustMul(neg).Eq(extended.Negate(prod)), "finite multiplication")
	e.that(pos.MustQuo(neg).Eq(extended.Negate(one)) && one.Eq(neg.MustQuo(extended.Negate(pos))), "finite division")

	for _, inf := range []extended.Value[int16]{posInf, negInf} {
		e.that(inf.MustQuo(pos).Eq(inf), "infinity is invariant under positive division")
		e.that(inf.MustQuo(neg).Eq(extended.Negate(inf)), "infinity flips sign under negative division")
		for _, v := range []extended.Value[int16]{pos, posInf} {
			e.that(inf.MustMul(v).Eq(inf), "infinity is invariant under positive multiplication")
		}
		for _, v := range []extended.Value[int16]{neg, negInf} {
			e.that(v.MustMul(inf).Eq(extended.Negate(inf)), "infinity flips sign under negative multiplication")
		}
		_, err := inf.Quo(zero)
		e.errorIs(err, extended.ErrIndeterminate, "infinity divided by zero is indeterminate")
		_, err = inf.Quo(posInf)
		e.errorIs(err, extended.ErrIndeterminate, "infinity divided by infinity is indeterminate")
	}
	for _, v := range []extended.Value[int16]{pos, neg, zero, one} {
		e.that(v.MustQuo(posInf).Eq(zero), "dividing by +inf yields zero")
		e.that(v.MustQuo(negInf).Eq(zero), "dividing by -inf yields zero")
	}
	_, err := pos.Quo(zero)
	e.errorIs(err, extended.ErrIndeterminate, "division by zero is indeterminate")
	return e.err
}

func finiteOps() error {
	var e expectation
	const size = 200
	for i := uint32(0); i < size; i++ {
		x := extended.Finite(i)
		not, err := extended.Not(x)
		e.noError(err)
		e.that(not.Eq(extended.Finite(^i)), "bitwise negation commutes")
		for j := uint32(0); j < size; j++ {
			y := extended.Finite(j)
			if j != 0 {
				e.that(eqOp(extended.Rem[uint32], x, y, i%j), "modular arithmetic commutes")
			}
			e.that(eqOp(extended.And[uint32], x, y, i&j), "bitwise and commutes")
			e.that(eqOp(extended.Or[uint32], x, y, i|j), "bitwise or commutes")
			e.that(eqOp(extended.Xor[uint32], x, y, i^j), "bitwise xor commutes")
			e.that(eqOp(extended.Lsh[uint32], x, y, i<<j), "left shift commutes")
			e.that(eqOp(extended.Rsh[uint32], x, y, i>>j), "right shift commutes")
		}
		if e.err != nil {
			break
		}
	}
	_, err := extended.And(extended.PosInf[uint32](), extended.Finite[uint32](1))
	e.errorIs(err, extended.ErrFiniteness, "bitwise operations need finite values")
	_, err = extended.Rem(extended.Finite[uint32](1), extended.NegInf[uint32]())
	e.errorIs(err, extended.ErrFiniteness, "modular arithmetic needs finite values")
	return e.err
}

func eqOp[T extended.Number](op func(a, b extended.Value[T]) (extended.Value[T], error), x, y extended.Value[T], want T) bool {
	res, err := op(x, y)
	return err == nil && res.Eq(extended.Finite(want))
}

func text() error {
	var e expectation
	e.that(extended.Finite[uint16](256).String() == "256", "unsigned formatting")
	e.that(extended.Finite[int16](-480).String() == "-480", "signed formatting")
	e.that(extended.NegInf[float64]().String() == "-inf", "-inf formatting")
	e.that(extended.PosInf[uint16]().String() == "+inf", "+inf formatting")

	de := extended.PosInf[float64]()
	_, err := fmt.Sscan("256", &de)
	e.noError(err)
	f, err := de.FiniteValue()
	e.noError(err)
	e.that(math.Abs(f-256) < 1e-5, "floating point parsing")

	big := extended.NegInf[int64]()
	_, err = fmt.Fscan(strings.NewReader(extended.Finite[int16](-480).String()), &big)
	e.noError(err)
	e.that(big.Eq(extended.Finite[int64](-480)), "signed parsing")

	_, err = extended.Parse[int]("+inf")
	e.errorIs(err, extended.ErrSyntax, "infinities can't be parsed")
	return e.err
}
