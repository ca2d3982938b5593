// Package solo contains the synchronous combinators over monad.Result.
//
// Highlights:
// - Bind: run a factory, turning errors and panics into a failure
// - Match/MatchDo: dispatch on Ok or Err
// - Map: chain a step returning a Result, short-circuiting on Err
// - Pipe: adapt a plain (value, error) function
// - Ensure/EnsureErr: gate an Ok value on a predicate
// - Unwrap: extract the value, panicking on Err
// - Tee: side effect on Ok
package solo
