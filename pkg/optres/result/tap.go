package result

import "github.com/ib-77/optres/pkg/optres"

func noop[T any](_ T) {}

func TapOk[T, E any](src optres.Result[T, E], fn func(T)) optres.Result[T, E] {
	return TapBoth(src, fn, noop[E])
}

func TapErr[T, E any](src optres.Result[T, E], fn func(E)) optres.Result[T, E] {
	return TapBoth(src, noop[T], fn)
}

// TapBoth calls okFn or errFn by the discriminant of src and returns src unchanged.
func TapBoth[T, E any](src optres.Result[T, E], okFn func(T), errFn func(E)) optres.Result[T, E] {
	built(src)

	if src.IsOk() {
		okFn(src.Val())
	} else {
		errFn(src.Err())
	}
	return src
}
