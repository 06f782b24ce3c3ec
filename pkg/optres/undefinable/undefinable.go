package undefinable

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

func And[T, U any](a optres.Undefinable[T], b optres.Undefinable[U]) optres.Undefinable[U] {
	if a.IsNotUndefined() {
		return b
	}
	return optres.Undefined[U]()
}

func AndThen[T, U any](src optres.Undefinable[T], selector func(T) optres.Undefinable[U]) optres.Undefinable[U] {
	v, ok := src.Get()
	if !ok {
		return optres.Undefined[U]()
	}
	return selector(v)
}

func Or[T any](a, b optres.Undefinable[T]) optres.Undefinable[T] {
	if a.IsNotUndefined() {
		return a
	}
	return b
}

func OrElse[T any](src optres.Undefinable[T], def func() optres.Undefinable[T]) optres.Undefinable[T] {
	if src.IsNotUndefined() {
		return src
	}
	return def()
}

func Map[T, U any](src optres.Undefinable[T], selector func(T) U) optres.Undefinable[U] {
	v, ok := src.Get()
	if !ok {
		return optres.Undefined[U]()
	}
	return optres.UndefinableOf(selector(v))
}

func MapOr[T, U any](src optres.Undefinable[T], def optres.Undefinable[U], selector func(T) optres.Undefinable[U]) U {
	var r optres.Undefinable[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelectorReturnedUndefined
	} else {
		r = def
		msg = expect.ErrMsgDefMustNotBeUndefined
	}
	return expect.NotUndefined(r, msg)
}

// MapOrElse returns the result of selector with the payload of src if src is
// not undefined. Otherwise, it returns the result of def.
//
// This is a combination of Map and UnwrapOrElse. If either callback returns
// undefined, it panics. Use AndThen and OrElse to accept an undefined result.
func MapOrElse[T, U any](src optres.Undefinable[T], def func() optres.Undefinable[U], selector func(T) optres.Undefinable[U]) U {
	var r optres.Undefinable[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelectorReturnedUndefined
	} else {
		r = def()
		msg = expect.ErrMsgDefReturnedUndefined
	}
	return expect.NotUndefined(r, msg)
}

func UnwrapOr[T any](src optres.Undefinable[T], def T) T {
	v, ok := src.Get()
	if !ok {
		return def
	}
	return v
}

func UnwrapOrElse[T any](src optres.Undefinable[T], def func() T) T {
	v, ok := src.Get()
	if !ok {
		return def()
	}
	return v
}

func Unwrap[T any](src optres.Undefinable[T]) T {
	return expect.NotUndefined(src, expect.ErrMsgUnwrapUndefined)
}

func Expect[T any](src optres.Undefinable[T], message string) T {
	return expect.NotUndefined(src, message)
}

func Tap[T any](src optres.Undefinable[T], fn func(T)) optres.Undefinable[T] {
	if v, ok := src.Get(); ok {
		fn(v)
	}
	return src
}

func ToOption[T any](src optres.Undefinable[T]) optres.Option[T] {
	v, ok := src.Get()
	if !ok {
		return optres.None[T]()
	}
	return optres.Some(v)
}

func FromOption[T any](src optres.Option[T]) optres.Undefinable[T] {
	v, ok := src.Get()
	if !ok {
		return optres.Undefined[T]()
	}
	return optres.UndefinableOf(v)
}
