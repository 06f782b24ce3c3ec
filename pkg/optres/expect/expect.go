package expect

import (
	"errors"

	"github.com/ib-77/optres/pkg/optres"
)

func NotNullAndUndefined[T any](v optres.Maybe[T], message string) T {
	r, ok := v.Get()
	if !ok {
		panic(optres.NewContractError(message))
	}
	return r
}

func NotNull[T any](v optres.Nullable[T], message string) T {
	r, ok := v.Get()
	if !ok {
		panic(optres.NewContractError(message))
	}
	return r
}

// NotUndefined permits T to carry its own null; only undefined is rejected.
func NotUndefined[T any](v optres.Undefinable[T], message string) T {
	r, ok := v.Get()
	if !ok {
		panic(optres.NewContractError(message))
	}
	return r
}

func Some[T any](v optres.Option[T], message string) T {
	r, ok := v.Get()
	if !ok {
		panic(optres.NewContractError(message))
	}
	return r
}

func Ok[T, E any](v optres.Result[T, E], message string) T {
	if !v.IsOk() {
		panic(optres.NewContractError(message))
	}
	return v.Val()
}

func Err[T, E any](v optres.Result[T, E], message string) E {
	if !v.IsErr() {
		panic(optres.NewContractError(message))
	}
	return v.Err()
}

// Capture runs fn and returns the *optres.ContractError or *optres.TypeError
// it raised, or nil. Any other panic is propagated.
func Capture(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !(errors.Is(e, optres.ErrContract) || errors.Is(e, optres.ErrType)) {
			panic(r)
		}
		err = e
	}()

	fn()
	return nil
}
