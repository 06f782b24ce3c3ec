package optres

type resultState uint8

const (
	resultEmpty resultState = iota
	resultOk
	resultErr
)

// Result is either Ok carrying a T or Err carrying an E.
// The zero value is neither: it is what a callback produces when it forgets
// to construct a Result, and combinators that validate callback output reject it.
type Result[T, E any] struct {
	val   T
	err   E
	state resultState
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		val:   v,
		state: resultOk,
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:   e,
		state: resultErr,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.state == resultOk
}

func (r Result[T, E]) IsErr() bool {
	return r.state == resultErr
}

// IsEmpty reports whether r was not built by Ok or Err.
func (r Result[T, E]) IsEmpty() bool {
	return r.state == resultEmpty
}

// Val returns the Ok payload, or T's zero value.
func (r Result[T, E]) Val() T {
	return r.val
}

// Err returns the Err payload, or E's zero value.
func (r Result[T, E]) Err() E {
	return r.err
}
