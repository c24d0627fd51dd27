// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avdva/extended/internal/numutil"
)

const (
	posInfString = "+inf"
	negInfString = "-inf"
)

// String returns a finite value in its shortest decimal form, or "+inf"/"-inf" for infinities.
func (v Value[T]) String() string {
	switch v.state {
	case finite:
		return numutil.Format(v.v)
	case posInf:
		return posInfString
	case negInf:
		return negInfString
	default:
		panic(invalidState("string", v.state))
	}
}

// GoString returns a Go-syntax representation of v.
func (v Value[T]) GoString() string {
	v.mustBeValid("gostring")
	typ := fmt.Sprintf("%T", v.v)
	switch v.state {
	case posInf:
		return "extended.PosInf[" + typ + "]()"
	case negInf:
		return "extended.NegInf[" + typ + "]()"
	default:
		return "extended.Finite[" + typ + "](" + numutil.Format(v.v) + ")"
	}
}

// Format implements fmt.Formatter.
// Finite values are formatted as T would be with the same verb, flags, width and precision.
// The %s and %q verbs, as well as infinities, use the result of String, padded to the width.
func (v Value[T]) Format(f fmt.State, verb rune) {
	v.mustBeValid("format")
	switch {
	case verb == 'v' && f.Flag('#'):
		io.WriteString(f, v.GoString())
	case v.state == finite && verb != 's' && verb != 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.v)
	default:
		s := v.String()
		if verb == 'q' {
			s = strconv.Quote(s)
		}
		if width, ok := f.Width(); ok && width > len(s) {
			pad := strings.Repeat(" ", width-len(s))
			if f.Flag('-') {
				s += pad
			} else {
				s = pad + s
			}
		}
		io.WriteString(f, s)
	}
}

// Parse parses a finite value.
// Infinities can't be parsed: "+inf" and "-inf" produce an error matching ErrSyntax.
func Parse[T Number](s string) (Value[T], error) {
	return parseBase[T](s, 10)
}

func parseBase[T Number](s string, base int) (Value[T], error) {
	f, err := numutil.ParseBase[T](s, base)
	if err != nil {
		return Value[T]{}, &OpError{Op: "parse", Kind: ErrSyntax, Msg: strconv.Quote(s), Err: err}
	}
	return Finite(f), nil
}

// MustParse parses a finite value, or panics.
func MustParse[T Number](s string) Value[T] {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Scan implements fmt.Scanner. It reads a single space-delimited token and parses it as a finite value.
// The %v, %d, %s, %e, %f and %g verbs read a decimal number. For integer types
// %b, %o and %x read a binary, octal and hexadecimal number without a prefix.
// Like Parse, Scan doesn't support infinities. On error v is not changed.
func (v *Value[T]) Scan(state fmt.ScanState, verb rune) error {
	base, ok := scanBase(verb)
	if !ok {
		return &OpError{Op: "scan", Kind: ErrSyntax, Msg: "bad verb %" + string(verb)}
	}
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	parsed, err := parseBase[T](string(token), base)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func scanBase(verb rune) (int, bool) {
	switch verb {
	case 'v', 'd', 's', 'e', 'E', 'f', 'F', 'g', 'G':
		return 10, true
	case 'b':
		return 2, true
	case 'o', 'O':
		return 8, true
	case 'x', 'X':
		return 16, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Value[T]) MarshalText() ([]byte, error) {
	if err := v.check("marshal"); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only finite values can be unmarshaled.
func (v *Value[T]) UnmarshalText(data []byte) error {
	parsed, err := Parse[T](string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON marshals a finite value as a json number.
// Infinities are marshaled as strings, `"+inf"` and `"-inf"`.
// A finite value holding an IEEE infinity or a NaN produces an error matching ErrFiniteness.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if err := v.check("marshal"); err != nil {
		return nil, err
	}
	if v.state == finite {
		if numutil.IsInfOrNaN(v.v) {
			return nil, notFinite("marshal", "payload "+numutil.Format(v.v)+" is not a json number")
		}
		return []byte(numutil.Format(v.v)), nil
	}
	return []byte(strconv.Quote(v.String())), nil
}

// UnmarshalJSON unmarshals a json number, or a string containing a number.
// Only finite values can be unmarshaled, so infinities, produced by MarshalJSON, are rejected.
// null is a no-op.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return &OpError{Op: "parse", Kind: ErrSyntax, Msg: string(data), Err: err}
		}
		data = []byte(s)
	}
	return v.UnmarshalText(data)
}
