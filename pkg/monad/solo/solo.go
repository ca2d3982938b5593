package solo

import (
	"github.com/ib-77/fluentutils/pkg/monad"
)

// Bind calls factory and wraps its value as Ok. A returned error or a panic
// becomes a FUME_02 failure labelled with label; Bind itself never panics.
func Bind[T any](label string, factory func() (T, error)) (out monad.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = monad.Err[T](monad.FailedToBindFactory(monad.Recovered(r), label))
		}
	}()

	value, err := factory()
	if err != nil {
		return monad.Err[T](monad.FailedToBindFactory(err, label))
	}
	return monad.Ok(value)
}

func Match[In, Out any](input monad.Result[In],
	onOk func(value In) Out,
	onErr func(err monad.Error) Out) Out {

	switch {
	case input.IsOk():
		return onOk(input.Result())
	case input.IsErr():
		return onErr(input.Err())
	default:
		panic(monad.Unsupported(input))
	}
}

// MatchDo is Match for handlers that return nothing.
func MatchDo[T any](input monad.Result[T],
	onOk func(value T),
	onErr func(err monad.Error)) {

	Match(input,
		func(value T) monad.Empty {
			onOk(value)
			return monad.Empty{}
		},
		func(err monad.Error) monad.Empty {
			onErr(err)
			return monad.Empty{}
		})
}

// Map chains a step that itself returns a Result. An Err input is forwarded
// and mapper is not called.
func Map[In, Out any](input monad.Result[In],
	mapper func(value In) monad.Result[Out]) monad.Result[Out] {

	return Match(input, mapper, monad.Err[Out])
}

// Pipe adapts a plain, possibly failing function. A returned error or a panic
// from transform becomes a FUME_03 failure labelled with label.
func Pipe[In, Out any](input monad.Result[In], label string,
	transform func(value In) (Out, error)) monad.Result[Out] {

	return Match(input,
		func(value In) (out monad.Result[Out]) {
			defer func() {
				if r := recover(); r != nil {
					out = monad.Err[Out](monad.FailedToPipeValue(monad.Recovered(r), label))
				}
			}()

			res, err := transform(value)
			if err != nil {
				return monad.Err[Out](monad.FailedToPipeValue(err, label))
			}
			return monad.Ok(res)
		},
		monad.Err[Out])
}

// Ensure keeps an Ok whose value satisfies predicate and fails it with
// FailedPredicate(label) otherwise.
func Ensure[T any](input monad.Result[T],
	predicate func(value T) bool, label string) monad.Result[T] {

	return ensure(input, predicate, func() monad.Error { return monad.FailedPredicate(label) })
}

// EnsureErr is Ensure with a caller supplied error.
func EnsureErr[T any](input monad.Result[T],
	predicate func(value T) bool, err monad.Error) monad.Result[T] {

	return ensure(input, predicate, func() monad.Error { return err })
}

func ensure[T any](input monad.Result[T],
	predicate func(value T) bool, onFail func() monad.Error) monad.Result[T] {

	return Match(input,
		func(value T) monad.Result[T] {
			if predicate(value) {
				return input
			}
			return monad.Err[T](onFail())
		},
		monad.Err[T])
}

// Unwrap returns the Ok value and panics with *monad.UnwrapPanicError on Err.
func Unwrap[T any](input monad.Result[T]) T {
	return Match(input,
		func(value T) T { return value },
		func(err monad.Error) T { panic(&monad.UnwrapPanicError{Err: err}) })
}

// Tee runs onOk for its side effect and returns input unchanged.
func Tee[T any](input monad.Result[T], onOk func(value T)) monad.Result[T] {
	return Match(input,
		func(value T) monad.Result[T] {
			onOk(value)
			return input
		},
		monad.Err[T])
}
