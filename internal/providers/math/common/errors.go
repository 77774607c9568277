package common

import (
	"errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is.
var (
	ErrType  = errors.New("type error")
	ErrValue = errors.New("value error")
)

// ErrorKind distinguishes the two failure kinds of the numeric core.
type ErrorKind int

const (
	// KindType means the input had the wrong shape (text where a number
	// was expected, a float where an integer is required).
	KindType ErrorKind = iota
	// KindValue means the input was well typed but outside the domain.
	KindValue
)

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindType:
		return "type_error"
	case KindValue:
		return "value_error"
	default:
		return "unknown_error"
	}
}

// Error is returned by every operation in the math packages.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == KindType
	case ErrValue:
		return e.Kind == KindValue
	}
	return false
}

// TypeError creates a type failure for op.
func TypeError(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindType, Op: op, Message: fmt.Sprintf(format, args...)}
}

// ValueError creates a value failure for op.
func ValueError(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValue, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsTypeError reports whether err is a type failure.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrType)
}

// IsValueError reports whether err is a value failure.
func IsValueError(err error) bool {
	return errors.Is(err, ErrValue)
}

// KindOf returns the kind carried by err, or false when err did not come
// from the math packages.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
