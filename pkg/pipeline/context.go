package pipeline

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	originKey    contextKey = "origin"
)

// DefaultOrigin is reported for requests that did not come from outside.
const DefaultOrigin = "internal"

func WithRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(requestIDKey).(uuid.UUID)
	return id, ok
}

// WithOrigin records where a request came from, e.g. "GET /people?limit=10".
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey, origin)
}

func OriginFromContext(ctx context.Context) string {
	origin, ok := ctx.Value(originKey).(string)
	if !ok || origin == "" {
		return DefaultOrigin
	}
	return origin
}
