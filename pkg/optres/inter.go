package optres

// Container is implemented by every container that may hold a payload.
type Container[T any] interface {
	// Get returns the payload and whether it is present
	Get() (T, bool)
}

// Classifier is implemented by Result.
type Classifier interface {
	IsOk() bool
	IsErr() bool
	// IsEmpty returns true for a Result that was never constructed
	IsEmpty() bool
}

var (
	_ Container[int] = Option[int]{}
	_ Container[int] = (*MutOption[int])(nil)
	_ Container[int] = Maybe[int]{}
	_ Container[int] = Nullable[int]{}
	_ Container[int] = Undefinable[int]{}
	_ Classifier     = Result[int, error]{}
)
