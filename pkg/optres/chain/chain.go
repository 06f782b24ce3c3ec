package chain

import (
	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/result"
)

// Chain carries an optres.Result[T, E] through a sequence of steps; once it
// holds an Err, later Ok-side steps are skipped and the E travels unchanged.
type Chain[T, E any] struct {
	result optres.Result[T, E]
}

// Start wraps r. An empty r panics at the first step that reads it.
func Start[T, E any](r optres.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: r}
}

// FromValue starts from Ok(value).
func FromValue[T, E any](value T) *Chain[T, E] {
	return Start(optres.Ok[T, E](value))
}

// FromError starts from Err(err).
func FromError[T, E any](err E) *Chain[T, E] {
	return Start(optres.Err[T](err))
}

// Result returns the current Ok or Err.
func (c *Chain[T, E]) Result() optres.Result[T, E] {
	return c.result
}

// Then runs onOk on the Ok payload and continues with the Result it returns.
// An Err skips onOk.
func Then[T, U, E any](c *Chain[T, E], onOk func(T) optres.Result[U, E]) *Chain[U, E] {
	return Start(result.AndThen(c.result, onOk))
}

// ThenTry runs a (U, error) function on the Ok payload; a non-nil error
// becomes Err.
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(T) (U, error)) *Chain[U, error] {
	return Start(result.Try(c.result, tryOnOk))
}

// Map replaces the Ok payload with onOk's return value.
func Map[T, U, E any](c *Chain[T, E], onOk func(T) U) *Chain[U, E] {
	return Start(result.Map(c.result, onOk))
}

// Recover hands the E of an Err to onErr and continues with its Result.
func (c *Chain[T, E]) Recover(onErr func(E) optres.Result[T, E]) *Chain[T, E] {
	return Start(result.OrElse(c.result, onErr))
}

// Ensure calls onOk for an Ok and keeps the chain as is.
func (c *Chain[T, E]) Ensure(onOk func(T)) *Chain[T, E] {
	return Start(result.TapOk(c.result, onOk))
}

// Inspect calls onOk or onErr by discriminant and keeps the chain as is.
func (c *Chain[T, E]) Inspect(onOk func(T), onErr func(E)) *Chain[T, E] {
	return Start(result.TapBoth(c.result, onOk, onErr))
}

// Finally reduces the chain to U: onOk for an Ok payload, onErr for an E.
func Finally[T, E, U any](c *Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.MapOrElse(c.result, onErr, onOk)
}
