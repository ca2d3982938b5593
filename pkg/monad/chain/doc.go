// Package chain provides a fluent wrapper around monad.Result
// for building synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue/Bind: begin a chain from a Result, a value or a factory
// - Then: continue with a step returning a Result (solo.Map)
// - ThenPipe: call a function (U, error) and convert failures (solo.Pipe)
// - Ensure/EnsureErr/ValidateAll: gate the value on predicates
// - Tee: run side effects on success without changing the result
// - Finally/Unwrap: collapse the chain into a final value
package chain
