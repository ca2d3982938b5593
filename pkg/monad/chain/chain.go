package chain

import (
	"context"
	"errors"
	"strings"

	"github.com/ib-77/fluentutils/pkg/monad"
	"github.com/ib-77/fluentutils/pkg/monad/solo"
)

// Chain wraps a monad.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result monad.Result[T]
}

// Start creates a new chain from a monad.Result
func Start[T any](ctx context.Context, result monad.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, monad.Ok(value))
}

// Bind starts a chain from a factory, see solo.Bind
func Bind[T any](ctx context.Context, label string, factory func(context.Context) (T, error)) *Chain[T] {
	return Start(ctx, solo.Bind(label, func() (T, error) { return factory(ctx) }))
}

// Result returns the underlying monad.Result
func (c *Chain[T]) Result() monad.Result[T] {
	return c.result
}

// Then chains a function that returns monad.Result[U]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) monad.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(value T) monad.Result[U] {
			return onOk(c.ctx, value)
		}),
	}
}

// ThenPipe chains a plain function returning (U, error)
func ThenPipe[T, U any](c *Chain[T], label string, transform func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Pipe(c.result, label, func(value T) (U, error) {
			return transform(c.ctx, value)
		}),
	}
}

// Ensure fails the chain when predicate rejects the value
func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, label string) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Ensure(c.result, func(value T) bool {
			return predicate(c.ctx, value)
		}, label),
	}
}

// EnsureErr fails the chain with err when predicate rejects the value
func (c *Chain[T]) EnsureErr(predicate func(context.Context, T) bool, err monad.Error) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.EnsureErr(c.result, func(value T) bool {
			return predicate(c.ctx, value)
		}, err),
	}
}

// Tee performs a side effect without changing the result
func (c *Chain[T]) Tee(onOk func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.result, func(value T) {
			onOk(c.ctx, value)
		}),
	}
}

// ValidateAll runs every validator against the value. With breakOnError the
// first failure wins; otherwise failures are merged into one Error carrying
// the first code, all messages and every failure as joined cause.
func (c *Chain[T]) ValidateAll(breakOnError bool,
	validators ...func(context.Context, T) monad.Result[T]) *Chain[T] {

	if !c.result.IsValid() {
		panic(monad.Unsupported(c.result))
	}
	if c.result.IsErr() || len(validators) == 0 {
		return c
	}

	var failures []monad.Error
	for _, validate := range validators {
		res := validate(c.ctx, c.result.Result())
		if !res.IsErr() {
			continue
		}
		if breakOnError {
			return &Chain[T]{ctx: c.ctx, result: res}
		}
		failures = append(failures, res.Err())
	}

	if len(failures) == 0 {
		return c
	}
	return &Chain[T]{ctx: c.ctx, result: monad.Err[T](merge(failures))}
}

func merge(failures []monad.Error) monad.Error {
	if len(failures) == 1 {
		return failures[0]
	}

	messages := make([]string, 0, len(failures))
	causes := make([]error, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, f.Message.String())
		causes = append(causes, mergedParts(f)...)
	}

	return monad.NewError(failures[0].Code,
		monad.ErrorMessage(strings.Join(messages, "; ")), errors.Join(causes...))
}

// mergedParts returns the failures an earlier merge joined into f, so merged
// causes stay flat, or f itself.
func mergedParts(f monad.Error) []error {
	parts := monad.GetErrors(f.Cause)
	if len(parts) < 2 {
		return []error{f}
	}
	for _, p := range parts {
		if _, ok := p.(monad.Error); !ok {
			return []error{f}
		}
	}
	return parts
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, monad.Error) U) U {
	return solo.Match(c.result,
		func(value T) U { return onOk(c.ctx, value) },
		func(err monad.Error) U { return onErr(c.ctx, err) })
}

// Unwrap returns the value, panicking on failure, see solo.Unwrap
func (c *Chain[T]) Unwrap() T {
	return solo.Unwrap(c.result)
}
