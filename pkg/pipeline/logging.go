package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// Logging logs the start and the outcome of every request. Err results
// caused by cancellation are logged at info, other Err results at warn.
// A request id is taken from ctx or generated and stored in ctx for the
// inner handlers.
func Logging[Req, Res any](logger zerolog.Logger) Behaviour[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) monad.Result[Res] {
			id, ok := RequestIDFromContext(ctx)
			if !ok {
				id = uuid.New()
				ctx = WithRequestID(ctx, id)
			}

			log := logger.With().
				Str("request_id", id.String()).
				Str("request", RequestName(req)).
				Str("origin", OriginFromContext(ctx)).
				Logger()

			log.Info().Interface("payload", req).Msg("Started processing request")

			start := time.Now()
			res := next(ctx, req)
			elapsed := time.Since(start)

			if res.IsErr() {
				err := res.Err()
				if monad.IsCancellationError(err) {
					log.Info().
						Str("code", err.Code.String()).
						Int64("elapsed_ms", elapsed.Milliseconds()).
						Msg("Request cancelled")
					return res
				}
				log.Warn().
					Str("code", err.Code.String()).
					Str("error", err.Message.String()).
					Int64("elapsed_ms", elapsed.Milliseconds()).
					Msg("Request returned error result")
				return res
			}

			log.Info().
				Int64("elapsed_ms", elapsed.Milliseconds()).
				Msg("Successfully processed request")
			return res
		}
	}
}
