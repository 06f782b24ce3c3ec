package optres

func IsSome[T any](v Option[T]) bool {
	return v.ok
}

func IsNone[T any](v Option[T]) bool {
	return !v.ok
}

func IsOk[T, E any](v Result[T, E]) bool {
	return v.IsOk()
}

func IsErr[T, E any](v Result[T, E]) bool {
	return v.IsErr()
}

func IsNotNullAndUndefined[T any](v Maybe[T]) bool {
	return v.IsNotNullAndUndefined()
}

func IsNullOrUndefined[T any](v Maybe[T]) bool {
	return v.IsNullOrUndefined()
}

func IsNull[T any](v Nullable[T]) bool {
	return v.IsNull()
}

func IsNotNull[T any](v Nullable[T]) bool {
	return v.IsNotNull()
}

func IsUndefined[T any](v Undefinable[T]) bool {
	return v.IsUndefined()
}

func IsNotUndefined[T any](v Undefinable[T]) bool {
	return v.IsNotUndefined()
}
