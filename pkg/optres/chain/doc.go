// Package chain provides a fluent wrapper over optres.Result for expression
// chains, built from the result combinators.
//
// - Start/FromValue/FromError: create a Chain
// - Then/ThenTry: compose Result-returning or error-returning functions
// - Map: transform the Ok payload
// - Recover: continue from the error via result.OrElse
// - Ensure/Inspect: side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package chain
