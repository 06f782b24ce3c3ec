// Package nullable contains combinators over optres.Nullable[T]: a payload is
// absent only when it is null.
package nullable
