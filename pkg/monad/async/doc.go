// Package async mirrors the solo combinators over a Pending result.
//
// Each stage is one goroutine that awaits exactly one source and then
// applies the synchronous semantics. The context given to a stage is passed
// to the user function untouched; stages never watch it themselves, so a
// function that ignores cancellation is not interrupted.
//
// MatchAsync, MatchDoAsync and UnwrapAsync block until the handler has run.
package async
