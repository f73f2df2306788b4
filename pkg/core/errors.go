package core

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the ways tuple arithmetic can fail
type ErrorKind int

const (
	// DivisionByZero is reported when a tuple is divided by exactly zero
	DivisionByZero ErrorKind = iota + 1
	// NormalizingZeroVector is reported when normalizing a tuple whose magnitude is below Epsilon
	NormalizingZeroVector
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case NormalizingZeroVector:
		return "normalizing zero vector"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ArithmeticError is returned by the fallible tuple operations
type ArithmeticError struct {
	Kind ErrorKind
	Op   string // operation that failed, e.g. "divide"
}

func (e *ArithmeticError) Error() string {
	if e.Op == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Is matches any ArithmeticError of the same kind, so the sentinels below
// work with errors.Is regardless of which operation produced the error.
func (e *ArithmeticError) Is(target error) bool {
	t, ok := target.(*ArithmeticError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

var (
	ErrDivisionByZero        = &ArithmeticError{Kind: DivisionByZero}
	ErrNormalizingZeroVector = &ArithmeticError{Kind: NormalizingZeroVector}
)

// KindOf returns the ErrorKind carried by err, or 0 if err is not an ArithmeticError
func KindOf(err error) ErrorKind {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
