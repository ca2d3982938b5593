package monad

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil or a nil pointer held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// GetErrors returns the errors joined into err by errors.Join, err alone
// when it is not a join, and nothing for a nil err.
func GetErrors(err error) []error {
	if IsNil(err) {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellationError reports whether err, or a cause it wraps, is a
// context cancellation or deadline.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
