package result

import "github.com/ib-77/optres/pkg/optres"

// FromPair converts Go's (value, error) convention into a Result.
func FromPair[T any](v T, err error) optres.Result[T, error] {
	if err != nil {
		return optres.Err[T](err)
	}
	return optres.Ok[T, error](v)
}

// Try calls onTryExecute with the Ok payload and converts its error to Err.
func Try[In, Out any](input optres.Result[In, error],
	onTryExecute func(r In) (Out, error)) optres.Result[Out, error] {
	built(input)

	if !input.IsOk() {
		return optres.Err[Out](input.Err())
	}

	out, err := onTryExecute(input.Val())
	return FromPair(out, err)
}
