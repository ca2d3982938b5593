package pipeline

import (
	"context"
	"reflect"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// Handler serves one request type.
type Handler[Req, Res any] func(ctx context.Context, req Req) monad.Result[Res]

// Behaviour wraps a Handler with cross-cutting logic.
type Behaviour[Req, Res any] func(next Handler[Req, Res]) Handler[Req, Res]

// Named lets a request choose the name used in logs, metrics and spans.
type Named interface {
	RequestName() string
}

// Wrap applies behaviours around handler. The first behaviour is the
// outermost one and sees the request first.
func Wrap[Req, Res any](handler Handler[Req, Res], behaviours ...Behaviour[Req, Res]) Handler[Req, Res] {
	for i := len(behaviours) - 1; i >= 0; i-- {
		handler = behaviours[i](handler)
	}
	return handler
}

// RequestName returns the name of req: its RequestName when it is Named,
// otherwise its type name.
func RequestName(req any) string {
	if named, ok := req.(Named); ok {
		return named.RequestName()
	}
	if req == nil {
		return "nil"
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
