package nullable

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

// And returns b if a is not null. Otherwise, it returns null.
func And[T, U any](a optres.Nullable[T], b optres.Nullable[U]) optres.Nullable[U] {
	if a.IsNotNull() {
		return b
	}
	return optres.Null[U]()
}

func AndThen[T, U any](src optres.Nullable[T], selector func(T) optres.Nullable[U]) optres.Nullable[U] {
	v, ok := src.Get()
	if !ok {
		return optres.Null[U]()
	}
	return selector(v)
}

func Or[T any](a, b optres.Nullable[T]) optres.Nullable[T] {
	if a.IsNotNull() {
		return a
	}
	return b
}

func OrElse[T any](src optres.Nullable[T], def func() optres.Nullable[T]) optres.Nullable[T] {
	if src.IsNotNull() {
		return src
	}
	return def()
}

func Map[T, U any](src optres.Nullable[T], selector func(T) U) optres.Nullable[U] {
	v, ok := src.Get()
	if !ok {
		return optres.Null[U]()
	}
	return optres.NullableOf(selector(v))
}

// MapOr returns selector applied to the payload of src, or def if src is null.
// Neither the selector result nor def may be null.
func MapOr[T, U any](src optres.Nullable[T], def optres.Nullable[U], selector func(T) optres.Nullable[U]) U {
	var r optres.Nullable[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelector
	} else {
		r = def
		msg = expect.ErrMsgDefMustNotBeNull
	}
	return expect.NotNull(r, msg)
}

func MapOrElse[T, U any](src optres.Nullable[T], def func() optres.Nullable[U], selector func(T) optres.Nullable[U]) U {
	var r optres.Nullable[U]
	var msg string
	if v, ok := src.Get(); ok {
		r = selector(v)
		msg = expect.ErrMsgSelector
	} else {
		r = def()
		msg = expect.ErrMsgDefReturnedNull
	}
	return expect.NotNull(r, msg)
}

func UnwrapOr[T any](src optres.Nullable[T], def T) T {
	v, ok := src.Get()
	if !ok {
		return def
	}
	return v
}

func UnwrapOrElse[T any](src optres.Nullable[T], def func() T) T {
	v, ok := src.Get()
	if !ok {
		return def()
	}
	return v
}

func Unwrap[T any](src optres.Nullable[T]) T {
	return expect.NotNull(src, expect.ErrMsgUnwrapNull)
}

func Expect[T any](src optres.Nullable[T], message string) T {
	return expect.NotNull(src, message)
}

func Tap[T any](src optres.Nullable[T], fn func(T)) optres.Nullable[T] {
	if v, ok := src.Get(); ok {
		fn(v)
	}
	return src
}

func ToOption[T any](src optres.Nullable[T]) optres.Option[T] {
	v, ok := src.Get()
	if !ok {
		return optres.None[T]()
	}
	return optres.Some(v)
}

func FromOption[T any](src optres.Option[T]) optres.Nullable[T] {
	v, ok := src.Get()
	if !ok {
		return optres.Null[T]()
	}
	return optres.NullableOf(v)
}
