// Package pipeline runs Result returning request handlers through a chain of
// behaviours: logging, validation, panic recovery, metrics and tracing.
//
// Basic usage:
//
//	handler := pipeline.NewBuilder[CreatePerson, Person]().
//		WithAll(logger, pipeline.ValidatorFunc[CreatePerson](validate)).
//		WithMetrics(pipeline.NewMetrics()).
//		Build(createPerson)
//
//	res := handler(ctx, CreatePerson{Name: "Ada"})
package pipeline
