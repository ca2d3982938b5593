package monad

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
)

// FromValue wraps a bare value as Ok.
func FromValue[T any](value T) Result[T] {
	return Ok(value)
}

// FromError wraps an Error as Err for any T.
func FromError[T any](err Error) Result[T] {
	return Err[T](err)
}

// FromFault converts a caught error into Err. The code is DYN_ followed by
// the upper case letters of the fault's type name, so an
// *InvalidOperationError becomes DYN_IOE. A fault that already is an Error
// is passed through. A nil fault yields the invalid zero Result.
func FromFault[T any](fault error) Result[T] {
	if IsNil(fault) {
		return Result[T]{}
	}

	if e, ok := fault.(Error); ok {
		return Err[T](e)
	}
	var p *Error
	if errors.As(fault, &p) && error(p) == fault {
		return Err[T](*p)
	}

	code := ErrorCode("DYN_" + upperLetters(typeName(fault)))
	return Err[T](NewError(code, ErrorMessage(fault.Error()), fault))
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func upperLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
