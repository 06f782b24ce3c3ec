// Package expect is the guard layer used by the combinator packages.
//
// Each guard returns the payload of a container when it is present and
// otherwise panics with an *optres.ContractError carrying exactly the message
// passed by the caller, so the side of a combinator that broke its contract
// (selector result, default, recovery callback) is named in the failure.
//
// - NotNullAndUndefined/NotNull/NotUndefined: guard the sentinel unions
// - Some/Ok/Err: guard Option and Result
// - Capture: turn a raised violation back into an error value
package expect
