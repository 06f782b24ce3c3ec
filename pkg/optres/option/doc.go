// Package option contains synchronous combinators over optres.Option[T].
//
// Highlights:
// - And/Or/Xor: pick between already computed options, no callbacks
// - AndThen/OrElse/Filter: continue with a callback on Some or None
// - Map/MapOr/MapOrElse: transform the payload
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse: reduce to a concrete value
// - OkOr/OkOrElse: move to optres.Result
// - Tap: side effects on Some only
// - From: snapshot any optres.Container into an Option
package option
