package pipeline

import "github.com/rs/zerolog"

// Builder collects behaviours in registration order. Each kind of
// behaviour is registered at most once; later registrations are ignored.
type Builder[Req, Res any] struct {
	registered map[string]bool
	behaviours []Behaviour[Req, Res]
}

func NewBuilder[Req, Res any]() *Builder[Req, Res] {
	return &Builder[Req, Res]{registered: map[string]bool{}}
}

func (b *Builder[Req, Res]) tryAdd(kind string, behaviour Behaviour[Req, Res]) *Builder[Req, Res] {
	if b.registered[kind] {
		return b
	}
	b.registered[kind] = true
	b.behaviours = append(b.behaviours, behaviour)
	return b
}

func (b *Builder[Req, Res]) WithExceptionHandling(logger zerolog.Logger) *Builder[Req, Res] {
	return b.tryAdd("exception", Recovery[Req, Res](logger))
}

func (b *Builder[Req, Res]) WithRequestLogging(logger zerolog.Logger) *Builder[Req, Res] {
	return b.tryAdd("logging", Logging[Req, Res](logger))
}

func (b *Builder[Req, Res]) WithRequestValidation(validators ...Validator[Req]) *Builder[Req, Res] {
	return b.tryAdd("validation", Validation[Req, Res](validators...))
}

func (b *Builder[Req, Res]) WithMetrics(m *Metrics) *Builder[Req, Res] {
	return b.tryAdd("metrics", Metered[Req, Res](m))
}

func (b *Builder[Req, Res]) WithTracing(t *Tracer) *Builder[Req, Res] {
	return b.tryAdd("tracing", Traced[Req, Res](t))
}

// WithAll registers exception handling, request logging and validation.
func (b *Builder[Req, Res]) WithAll(logger zerolog.Logger, validators ...Validator[Req]) *Builder[Req, Res] {
	return b.WithExceptionHandling(logger).
		WithRequestLogging(logger).
		WithRequestValidation(validators...)
}

func (b *Builder[Req, Res]) Behaviours() []Behaviour[Req, Res] {
	return append([]Behaviour[Req, Res](nil), b.behaviours...)
}

// Build wraps handler with the registered behaviours, the first one
// registered being the outermost.
func (b *Builder[Req, Res]) Build(handler Handler[Req, Res]) Handler[Req, Res] {
	return Wrap(handler, b.behaviours...)
}
