// Package result contains synchronous combinators over optres.Result[T, E].
//
// Highlights:
// - And/Or: pick between already computed results, no callbacks
// - AndThen/OrElse: continue with a callback; a callback returning a Result
//   that was never constructed panics with *optres.TypeError
// - Map/MapErr/MapOr/MapOrElse: transform either side
// - TapOk/TapErr/TapBoth: side effects that return the input unchanged
// - Unwrap/UnwrapErr/Expect/ExpectErr/UnwrapOr/UnwrapOrElse: reduce to a value
// - Try/FromPair: bridge Go's (T, error) convention
package result
