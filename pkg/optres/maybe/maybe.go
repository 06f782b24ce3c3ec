package maybe

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

// And returns b if a is neither null nor undefined. Otherwise, it returns a.
func And[T, U any](a optres.Maybe[T], b optres.Maybe[U]) optres.Maybe[U] {
	if a.IsNotNullAndUndefined() {
		return b
	}
	return optres.AbsentMaybe[U](a)
}

func AndThen[T, U any](src optres.Maybe[T], selector func(T) optres.Maybe[U]) optres.Maybe[U] {
	v, ok := src.Get()
	if !ok {
		return optres.AbsentMaybe[U](src)
	}
	return selector(v)
}

// Or returns a if it is neither null nor undefined. Otherwise, it returns b.
func Or[T any](a, b optres.Maybe[T]) optres.Maybe[T] {
	if a.IsNotNullAndUndefined() {
		return a
	}
	return b
}

func OrElse[T any](src optres.Maybe[T], def func() optres.Maybe[T]) optres.Maybe[T] {
	if src.IsNotNullAndUndefined() {
		return src
	}
	return def()
}

func Map[T, U any](src optres.Maybe[T], selector func(T) U) optres.Maybe[U] {
	v, ok := src.Get()
	if !ok {
		return optres.AbsentMaybe[U](src)
	}
	return optres.MaybeOf(selector(v))
}

// MapOr returns selector applied to the payload of src, or def if src is absent.
// Neither the selector result nor def may be null or undefined.
func MapOr[T, U any](src optres.Maybe[T], def optres.Maybe[U], selector func(T) optres.Maybe[U]) U {
	var r optres.Maybe[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelector
	} else {
		r = def
		msg = expect.ErrMsgDefMustNotBeNull
	}
	return expect.NotNullAndUndefined(r, msg)
}

// MapOrElse is a combination of Map and UnwrapOrElse. Exactly one of selector
// and def is called and its result may be neither null nor undefined.
func MapOrElse[T, U any](src optres.Maybe[T], def func() optres.Maybe[U], selector func(T) optres.Maybe[U]) U {
	var r optres.Maybe[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelector
	} else {
		r = def()
		msg = expect.ErrMsgDefReturnedNullOrUndefined
	}
	return expect.NotNullAndUndefined(r, msg)
}

func UnwrapOr[T any](src optres.Maybe[T], def T) T {
	v, ok := src.Get()
	if !ok {
		return def
	}
	return v
}

func UnwrapOrElse[T any](src optres.Maybe[T], def func() T) T {
	v, ok := src.Get()
	if !ok {
		return def()
	}
	return v
}

func Unwrap[T any](src optres.Maybe[T]) T {
	return expect.NotNullAndUndefined(src, expect.ErrMsgUnwrapAbsent)
}

func Expect[T any](src optres.Maybe[T], message string) T {
	return expect.NotNullAndUndefined(src, message)
}

func Tap[T any](src optres.Maybe[T], fn func(T)) optres.Maybe[T] {
	if v, ok := src.Get(); ok {
		fn(v)
	}
	return src
}

func ToOption[T any](src optres.Maybe[T]) optres.Option[T] {
	v, ok := src.Get()
	if !ok {
		return optres.None[T]()
	}
	return optres.Some(v)
}

// FromOption maps None to undefined.
func FromOption[T any](src optres.Option[T]) optres.Maybe[T] {
	v, ok := src.Get()
	if !ok {
		return optres.MaybeUndefined[T]()
	}
	return optres.MaybeOf(v)
}
