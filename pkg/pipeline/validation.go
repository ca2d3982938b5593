package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ib-77/fluentutils/pkg/monad"
)

const CodeValidation monad.ErrorCode = "VALIDATION"

var ErrValidationFailed = errors.New("pipeline: validation failed")

// Failure is one rejected property of a request.
type Failure struct {
	Field   string
	Message string
}

func (f Failure) String() string {
	if f.Field == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationError lists every failure found for a request.
type ValidationError struct {
	Failures []Failure
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationFailed is the Error returned when validators reject a request.
func ValidationFailed(failures []Failure) monad.Error {
	return monad.NewError(CodeValidation,
		"One or more validation failures have occurred.",
		&ValidationError{Failures: failures}).
		WithStatus(http.StatusBadRequest)
}

type Validator[Req any] interface {
	Validate(ctx context.Context, req Req) []Failure
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[Req any] func(ctx context.Context, req Req) []Failure

func (f ValidatorFunc[Req]) Validate(ctx context.Context, req Req) []Failure {
	return f(ctx, req)
}

// Validation runs all validators and only calls next when none of them
// reported a failure. Failures from every validator are collected.
func Validation[Req, Res any](validators ...Validator[Req]) Behaviour[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		if len(validators) == 0 {
			return next
		}

		return func(ctx context.Context, req Req) monad.Result[Res] {
			var failures []Failure
			for _, v := range validators {
				failures = append(failures, v.Validate(ctx, req)...)
			}

			if len(failures) > 0 {
				return monad.Err[Res](ValidationFailed(failures))
			}
			return next(ctx, req)
		}
	}
}
