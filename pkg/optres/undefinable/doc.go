// Package undefinable contains combinators over optres.Undefinable[T]: a
// payload is absent only when it is undefined, so a T that itself carries a
// null is a legitimate payload.
package undefinable
