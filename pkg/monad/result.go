package monad

import "fmt"

type kind uint8

const (
	kindInvalid kind = iota
	kindOk
	kindErr
)

// Empty is the payload of a Result that carries no value.
type Empty struct{}

// Result is either Ok holding a value or Err holding an Error.
// The zero value is neither and is rejected by every dispatch.
type Result[T any] struct {
	kind  kind
	value T
	err   Error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{kind: kindOk, value: value}
}

// OkEmpty is the payload-free success.
func OkEmpty() Result[Empty] {
	return Ok(Empty{})
}

func Err[T any](err Error) Result[T] {
	return Result[T]{kind: kindErr, err: err}
}

// ErrWith fails with message and an error code derived from the calling
// function name and line, see DeriveCode.
func ErrWith[T any](message string, cause error) Result[T] {
	return Err[T](NewError(callerCode(2), ErrorMessage(message), cause))
}

// Retype forwards a non-Ok result under another value type.
// Ok results have no meaning under another type and become invalid.
func Retype[In, Out any](from Result[In]) Result[Out] {
	if from.kind == kindErr {
		return Err[Out](from.err)
	}
	return Result[Out]{}
}

func (r Result[T]) IsOk() bool {
	return r.kind == kindOk
}

func (r Result[T]) IsErr() bool {
	return r.kind == kindErr
}

// IsValid reports whether r is one of the two shapes.
func (r Result[T]) IsValid() bool {
	return r.kind == kindOk || r.kind == kindErr
}

// Result returns the Ok value, or the zero T otherwise.
func (r Result[T]) Result() T {
	return r.value
}

// Err returns the Err error, or the zero Error otherwise.
func (r Result[T]) Err() Error {
	return r.err
}

func (r Result[T]) Value() (T, bool) {
	return r.value, r.kind == kindOk
}

func (r Result[T]) String() string {
	switch r.kind {
	case kindOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case kindErr:
		return fmt.Sprintf("Err(%s)", r.err)
	default:
		return "Invalid"
	}
}
