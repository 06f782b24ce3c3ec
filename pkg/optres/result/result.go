package result

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

const (
	ErrMsgAndThenShape = "Result<T, E>.andThen()' param `op` should return `Result<U, E>`."
	ErrMsgOrElseShape  = "Result<T, E>.orElse()' param `op` should return `Result<T, F>`."
	ErrMsgEmptyInput   = "Result<T, E> must be built with `Ok()` or `Err()`."
)

// And returns b if a is Ok. Otherwise, it returns the error of a.
func And[T, U, E any](a optres.Result[T, E], b optres.Result[U, E]) optres.Result[U, E] {
	built(a)

	if a.IsOk() {
		return b
	}
	return optres.Err[U](a.Err())
}

func AndThen[T, U, E any](src optres.Result[T, E], op func(T) optres.Result[U, E]) optres.Result[U, E] {
	built(src)

	if !src.IsOk() {
		return optres.Err[U](src.Err())
	}

	r := op(src.Val())
	if r.IsEmpty() {
		panic(optres.NewTypeError(ErrMsgAndThenShape))
	}
	return r
}

// Or returns a if it is Ok. Otherwise, it returns b.
func Or[T, E, F any](a optres.Result[T, E], b optres.Result[T, F]) optres.Result[T, F] {
	built(a)

	if a.IsOk() {
		return optres.Ok[T, F](a.Val())
	}
	return b
}

// OrElse returns src unchanged if it is Ok without calling op.
// Otherwise, it returns op applied to the error.
func OrElse[T, E, F any](src optres.Result[T, E], op func(E) optres.Result[T, F]) optres.Result[T, F] {
	built(src)

	if src.IsOk() {
		return optres.Ok[T, F](src.Val())
	}

	r := op(src.Err())
	if r.IsEmpty() {
		panic(optres.NewTypeError(ErrMsgOrElseShape))
	}
	return r
}

func Map[T, U, E any](src optres.Result[T, E], selector func(T) U) optres.Result[U, E] {
	built(src)

	if !src.IsOk() {
		return optres.Err[U](src.Err())
	}
	return optres.Ok[U, E](selector(src.Val()))
}

func MapErr[T, E, F any](src optres.Result[T, E], selector func(E) F) optres.Result[T, F] {
	built(src)

	if src.IsOk() {
		return optres.Ok[T, F](src.Val())
	}
	return optres.Err[T](selector(src.Err()))
}

func MapOr[T, E, U any](src optres.Result[T, E], def U, selector func(T) U) U {
	built(src)

	if !src.IsOk() {
		return def
	}
	return selector(src.Val())
}

// MapOrElse calls exactly one of selector and def.
func MapOrElse[T, E, U any](src optres.Result[T, E], def func(E) U, selector func(T) U) U {
	built(src)

	if !src.IsOk() {
		return def(src.Err())
	}
	return selector(src.Val())
}

func UnwrapOr[T, E any](src optres.Result[T, E], def T) T {
	built(src)

	if !src.IsOk() {
		return def
	}
	return src.Val()
}

func UnwrapOrElse[T, E any](src optres.Result[T, E], def func(E) T) T {
	built(src)

	if !src.IsOk() {
		return def(src.Err())
	}
	return src.Val()
}

func Unwrap[T, E any](src optres.Result[T, E]) T {
	built(src)
	return expect.Ok(src, expect.ErrMsgUnwrapErr)
}

func UnwrapErr[T, E any](src optres.Result[T, E]) E {
	built(src)
	return expect.Err(src, expect.ErrMsgUnwrapErrOnOk)
}

func Expect[T, E any](src optres.Result[T, E], message string) T {
	built(src)
	return expect.Ok(src, message)
}

func ExpectErr[T, E any](src optres.Result[T, E], message string) E {
	built(src)
	return expect.Err(src, message)
}

func ToOk[T, E any](src optres.Result[T, E]) optres.Option[T] {
	built(src)

	if !src.IsOk() {
		return optres.None[T]()
	}
	return optres.Some(src.Val())
}

func ToErr[T, E any](src optres.Result[T, E]) optres.Option[E] {
	built(src)

	if !src.IsErr() {
		return optres.None[E]()
	}
	return optres.Some(src.Err())
}

func Flatten[T, E any](src optres.Result[optres.Result[T, E], E]) optres.Result[T, E] {
	built(src)

	if !src.IsOk() {
		return optres.Err[T](src.Err())
	}
	return src.Val()
}

// built panics with *optres.TypeError if r was not made by Ok or Err.
// An empty input would otherwise pass for Err carrying a zero E.
func built(r optres.Classifier) {
	if r.IsEmpty() {
		panic(optres.NewTypeError(ErrMsgEmptyInput))
	}
}
