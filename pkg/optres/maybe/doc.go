// Package maybe contains combinators over optres.Maybe[T], where a payload is
// absent if it is either null or undefined.
//
// MapOr and MapOrElse promise a result free of both sentinels: a selector or
// default that produces one anyway panics with *optres.ContractError.
package maybe
