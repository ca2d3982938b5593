package monad

import (
	"errors"
	"fmt"
)

// Codes of the built-in errors.
const (
	CodeFailedPredicate     ErrorCode = "FUME_01"
	CodeFailedToBindFactory ErrorCode = "FUME_02"
	CodeFailedToPipeValue   ErrorCode = "FUME_03"
)

// ErrUnexpectedResult matches the panic raised when a Result is neither Ok nor Err.
var ErrUnexpectedResult = errors.New("monad: unexpected result type")

// FailedPredicate is returned by Ensure when the predicate labelled by label rejects the value.
func FailedPredicate(label string) Error {
	return NewError(CodeFailedPredicate,
		ErrorMessage(fmt.Sprintf("Result value does not match predicate '%s'.", label)))
}

func FailedToBindFactory(cause error, label string) Error {
	return NewError(CodeFailedToBindFactory,
		ErrorMessage(fmt.Sprintf("Error when binding result for factory '%s'.", label)), cause)
}

func FailedToPipeValue(cause error, label string) Error {
	return NewError(CodeFailedToPipeValue,
		ErrorMessage(fmt.Sprintf("Error piping value via expression '%s'.", label)), cause)
}

// UnwrapPanicError is the panic value of unwrapping a failed Result.
type UnwrapPanicError struct {
	Err Error
}

func (e *UnwrapPanicError) Error() string {
	return e.Err.String()
}

func (e *UnwrapPanicError) Unwrap() error {
	return e.Err.Cause
}

// UnsupportedResultError is the panic value of dispatching on a Result that
// was not built by Ok or Err.
type UnsupportedResultError struct {
	TypeName string
}

func (e *UnsupportedResultError) Error() string {
	return fmt.Sprintf("The result type '%s' is not supported.", e.TypeName)
}

func (e *UnsupportedResultError) Is(target error) bool {
	return target == ErrUnexpectedResult
}

// Unsupported builds the panic value for an invalid r.
func Unsupported[T any](r Result[T]) *UnsupportedResultError {
	return &UnsupportedResultError{TypeName: fmt.Sprintf("%T", r)}
}

// Recovered turns a recovered panic value into an error.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// PanicError wraps a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
