package pipeline

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// Recovery turns a panic in next into a failed Result built with
// monad.FromFault. Validation panics are logged as warnings, anything else
// as errors with the stack attached.
func Recovery[Req, Res any](logger zerolog.Logger) Behaviour[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) (res monad.Result[Res]) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err := monad.Recovered(r)
				res = monad.FromFault[Res](err)

				var event *zerolog.Event
				if errors.Is(err, ErrValidationFailed) {
					event = logger.Warn()
				} else {
					event = logger.Error().Str("stack", string(debug.Stack()))
				}

				event.Err(err).
					Str("exception_type", res.Err().Code.String()).
					Str("request", RequestName(req)).
					Interface("payload", req).
					Msg("Unhandled panic while processing request")
			}()

			return next(ctx, req)
		}
	}
}
