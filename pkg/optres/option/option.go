package option

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

// And returns b if a is Some. Otherwise, it returns None.
func And[T, U any](a optres.Option[T], b optres.Option[U]) optres.Option[U] {
	if a.IsSome() {
		return b
	}
	return optres.None[U]()
}

func AndThen[T, U any](src optres.Option[T], selector func(T) optres.Option[U]) optres.Option[U] {
	v, ok := src.Get()
	if !ok {
		return optres.None[U]()
	}
	return selector(v)
}

// Or returns a if it is Some. Otherwise, it returns b.
func Or[T any](a, b optres.Option[T]) optres.Option[T] {
	if a.IsSome() {
		return a
	}
	return b
}

func OrElse[T any](src optres.Option[T], def func() optres.Option[T]) optres.Option[T] {
	if src.IsSome() {
		return src
	}
	return def()
}

// Xor returns the Some one if exactly one of a and b is Some.
func Xor[T any](a, b optres.Option[T]) optres.Option[T] {
	switch {
	case a.IsSome() && b.IsNone():
		return a
	case a.IsNone() && b.IsSome():
		return b
	}
	return optres.None[T]()
}

func Filter[T any](src optres.Option[T], predicate func(T) bool) optres.Option[T] {
	v, ok := src.Get()
	if ok && predicate(v) {
		return src
	}
	return optres.None[T]()
}

func Map[T, U any](src optres.Option[T], selector func(T) U) optres.Option[U] {
	v, ok := src.Get()
	if !ok {
		return optres.None[U]()
	}
	return optres.Some(selector(v))
}

func MapOr[T, U any](src optres.Option[T], def U, selector func(T) U) U {
	v, ok := src.Get()
	if !ok {
		return def
	}
	return selector(v)
}

// MapOrElse calls exactly one of selector and def.
func MapOrElse[T, U any](src optres.Option[T], def func() U, selector func(T) U) U {
	v, ok := src.Get()
	if !ok {
		return def()
	}
	return selector(v)
}

func UnwrapOr[T any](src optres.Option[T], def T) T {
	v, ok := src.Get()
	if !ok {
		return def
	}
	return v
}

func UnwrapOrElse[T any](src optres.Option[T], def func() T) T {
	v, ok := src.Get()
	if !ok {
		return def()
	}
	return v
}

// Unwrap panics with an *optres.ContractError on None.
func Unwrap[T any](src optres.Option[T]) T {
	return expect.Some(src, expect.ErrMsgUnwrapNone)
}

// Expect panics with message on None.
func Expect[T any](src optres.Option[T], message string) T {
	return expect.Some(src, message)
}

func OkOr[T, E any](src optres.Option[T], err E) optres.Result[T, E] {
	v, ok := src.Get()
	if !ok {
		return optres.Err[T](err)
	}
	return optres.Ok[T, E](v)
}

func OkOrElse[T, E any](src optres.Option[T], err func() E) optres.Result[T, E] {
	v, ok := src.Get()
	if !ok {
		return optres.Err[T](err())
	}
	return optres.Ok[T, E](v)
}

func Flatten[T any](src optres.Option[optres.Option[T]]) optres.Option[T] {
	v, ok := src.Get()
	if !ok {
		return optres.None[T]()
	}
	return v
}

// Tap calls fn with the payload of Some and returns src unchanged.
func Tap[T any](src optres.Option[T], fn func(T)) optres.Option[T] {
	if v, ok := src.Get(); ok {
		fn(v)
	}
	return src
}

// From snapshots any container into an Option: a present payload is Some.
func From[T any](c optres.Container[T]) optres.Option[T] {
	v, ok := c.Get()
	if !ok {
		return optres.None[T]()
	}
	return optres.Some(v)
}
