// Package monad defines Result, a value that is either Ok with a payload or
// Err with an Error, together with its constructors and conversions.
//
// Combinators live in the sub packages:
// - solo: synchronous Bind, Match, Map, Pipe, Ensure and Unwrap
// - async: the same operations over an in-flight Pending result
// - chain: a fluent wrapper for building pipelines step by step
//
// Failures travel as values. Only Unwrap on an Err, and any dispatch on a
// Result that is neither Ok nor Err, panic.
package monad
