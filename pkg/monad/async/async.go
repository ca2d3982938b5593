package async

import (
	"context"

	"github.com/ib-77/fluentutils/pkg/monad"
	"github.com/ib-77/fluentutils/pkg/monad/solo"
)

// BindAsync runs factory in the background. ctx is handed to factory as is;
// an error it returns, including one caused by cancellation, becomes a
// FUME_02 failure like any other.
func BindAsync[T any](ctx context.Context, label string,
	factory func(ctx context.Context) (T, error)) *Pending[T] {

	return Start(ctx, func(ctx context.Context) monad.Result[T] {
		return solo.Bind(label, func() (T, error) { return factory(ctx) })
	})
}

func MapAsync[In, Out any](ctx context.Context, input *Pending[In],
	mapper func(ctx context.Context, value In) monad.Result[Out]) *Pending[Out] {

	return Start(ctx, func(ctx context.Context) monad.Result[Out] {
		return solo.Map(input.Await(), func(value In) monad.Result[Out] {
			return mapper(ctx, value)
		})
	})
}

func PipeAsync[In, Out any](ctx context.Context, input *Pending[In], label string,
	transform func(ctx context.Context, value In) (Out, error)) *Pending[Out] {

	return Start(ctx, func(ctx context.Context) monad.Result[Out] {
		return solo.Pipe(input.Await(), label, func(value In) (Out, error) {
			return transform(ctx, value)
		})
	})
}

func EnsureAsync[T any](ctx context.Context, input *Pending[T],
	predicate func(ctx context.Context, value T) bool, label string) *Pending[T] {

	return Start(ctx, func(ctx context.Context) monad.Result[T] {
		return solo.Ensure(input.Await(), func(value T) bool {
			return predicate(ctx, value)
		}, label)
	})
}

func EnsureErrAsync[T any](ctx context.Context, input *Pending[T],
	predicate func(ctx context.Context, value T) bool, err monad.Error) *Pending[T] {

	return Start(ctx, func(ctx context.Context) monad.Result[T] {
		return solo.EnsureErr(input.Await(), func(value T) bool {
			return predicate(ctx, value)
		}, err)
	})
}

// MatchAsync awaits input and returns the output of the handler it ran.
func MatchAsync[In, Out any](ctx context.Context, input *Pending[In],
	onOk func(ctx context.Context, value In) Out,
	onErr func(ctx context.Context, err monad.Error) Out) Out {

	return solo.Match(input.Await(),
		func(value In) Out { return onOk(ctx, value) },
		func(err monad.Error) Out { return onErr(ctx, err) })
}

func MatchDoAsync[T any](ctx context.Context, input *Pending[T],
	onOk func(ctx context.Context, value T),
	onErr func(ctx context.Context, err monad.Error)) {

	solo.MatchDo(input.Await(),
		func(value T) { onOk(ctx, value) },
		func(err monad.Error) { onErr(ctx, err) })
}

func UnwrapAsync[T any](input *Pending[T]) T {
	return solo.Unwrap(input.Await())
}
