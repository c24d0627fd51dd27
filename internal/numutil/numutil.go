// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numutil contains helpers that work uniformly over Go's primitive
// numeric types, including named types derived from them.
package numutil

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	errEmpty    = errors.New("empty input")
	errInfinite = errors.New("infinite values can't be parsed")
	errNaN      = errors.New("not-a-number values can't be parsed")
	errBase     = errors.New("floating-point numbers can only be parsed in base 10")
)

// BitSize returns the size of T in bits.
func BitSize[T Number]() int {
	var t T
	return int(unsafe.Sizeof(t) * 8)
}

// IsSigned returns true if T can hold negative values.
// Floating-point types are signed.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// IsFloat returns true if T is a floating-point type.
func IsFloat[T Number]() bool {
	// an integer type truncates 1/2 to zero.
	var one T = 1
	return one/2 != 0
}

// IsInfOrNaN returns true if v is an IEEE infinity or a NaN. It's always false for integers.
func IsInfOrNaN[T Number](v T) bool {
	return v-v != 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Cmp compares a and b.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Cmp[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Format returns the shortest decimal representation of v.
// Floats are formatted with the 'g' verb, so large and small magnitudes use an exponent.
func Format[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}

// Parse parses a decimal number of type T. Leading and trailing spaces are ignored.
// Floating-point infinities and NaNs are rejected.
func Parse[T Number](s string) (T, error) {
	return ParseBase[T](s, 10)
}

// ParseBase is like Parse, but integers are parsed in the given base, which
// must be in [2, 36]. Floating-point numbers can only be parsed in base 10.
func ParseBase[T Number](s string, base int) (T, error) {
	var result T
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return result, errEmpty
	}
	rv := reflect.ValueOf(&result).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, base, bits)
		if err != nil {
			return result, err
		}
		rv.SetInt(i)
	case reflect.Float32, reflect.Float64:
		if base != 10 {
			return result, errBase
		}
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return result, err
		}
		if math.IsInf(f, 0) {
			return result, errInfinite
		}
		if math.IsNaN(f) {
			return result, errNaN
		}
		rv.SetFloat(f)
	default:
		if s[0] == '+' {
			s = s[1:]
		}
		u, err := strconv.ParseUint(s, base, bits)
		if err != nil {
			return result, err
		}
		rv.SetUint(u)
	}
	return result, nil
}
