// Copyright 2020 Aleksandr Demakin. All rights reserved.

package extended

import (
	"errors"
	"fmt"
)

var (
	// ErrFiniteness is reported when an operation needs a finite operand and gets an infinite one,
	// or when the infinity kind of a finite value is requested.
	ErrFiniteness = errors.New("finite error")
	// ErrIndeterminate is reported for arithmetic forms without a value on the extended line,
	// like +inf + -inf, inf / inf, or a division by zero.
	ErrIndeterminate = errors.New("indeterminate form")
	// ErrShiftCount is reported for a shift by a negative amount.
	ErrShiftCount = errors.New("negative shift count")
	// ErrSyntax is reported when a string can't be parsed into a finite value.
	ErrSyntax = errors.New("invalid syntax")
	// ErrInternal means that a value has a corrupted state.
	ErrInternal = errors.New("internal error")
)

// OpError describes a failed operation.
// It matches one of the Err* kinds and, optionally, an underlying error via errors.Is.
type OpError struct {
	// Op is the name of the operation, like "add" or "parse".
	Op string
	// Kind is one of ErrFiniteness, ErrIndeterminate, ErrShiftCount, ErrSyntax, ErrInternal.
	Kind error
	// Msg names the offending operands, like "+inf + -inf".
	Msg string
	// Err is an underlying error, may be nil.
	Err error
}

func (e *OpError) Error() string {
	s := "extended: " + e.Op + ": " + e.Kind.Error()
	if len(e.Msg) > 0 {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the kind of the error and the underlying error, if any.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func indeterminate(op, format string, args ...interface{}) error {
	return &OpError{Op: op, Kind: ErrIndeterminate, Msg: fmt.Sprintf(format, args...)}
}

func notFinite(op, msg string) error {
	return &OpError{Op: op, Kind: ErrFiniteness, Msg: msg}
}

func invalidState(op string, state int8) error {
	return &OpError{Op: op, Kind: ErrInternal, Msg: fmt.Sprintf("invalid state %d", state)}
}
