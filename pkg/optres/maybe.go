package optres

type presence uint8

const (
	presenceUndefined presence = iota
	presenceNull
	presenceValue
)

// Maybe is a value, null, or undefined. The zero value is undefined.
type Maybe[T any] struct {
	val      T
	presence presence
}

func MaybeOf[T any](v T) Maybe[T] {
	return Maybe[T]{val: v, presence: presenceValue}
}

func MaybeNull[T any]() Maybe[T] {
	return Maybe[T]{presence: presenceNull}
}

func MaybeUndefined[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsNull() bool {
	return m.presence == presenceNull
}

func (m Maybe[T]) IsUndefined() bool {
	return m.presence == presenceUndefined
}

func (m Maybe[T]) IsNotNullAndUndefined() bool {
	return m.presence == presenceValue
}

func (m Maybe[T]) IsNullOrUndefined() bool {
	return m.presence != presenceValue
}

func (m Maybe[T]) Get() (T, bool) {
	return m.val, m.presence == presenceValue
}

// AbsentMaybe carries the sentinel of an absent m over to another payload type.
// It panics if m holds a value.
func AbsentMaybe[U, T any](m Maybe[T]) Maybe[U] {
	if m.presence == presenceValue {
		panic(NewContractError(ErrMsgAbsentFromValue))
	}
	return Maybe[U]{presence: m.presence}
}

// Nullable is a value or null. The zero value is null.
type Nullable[T any] struct {
	val T
	ok  bool
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{val: v, ok: true}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{}
}

// NullableFrom treats nil pointers, interfaces, maps, slices, channels and
// functions as null. Any other value, zero or not, is present.
func NullableFrom[T any](v T) Nullable[T] {
	if IsNil(v) {
		return Null[T]()
	}
	return NullableOf(v)
}

func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return NullableOf(*p)
}

func (n Nullable[T]) IsNull() bool {
	return !n.ok
}

func (n Nullable[T]) IsNotNull() bool {
	return n.ok
}

func (n Nullable[T]) Get() (T, bool) {
	return n.val, n.ok
}

func (n Nullable[T]) Maybe() Maybe[T] {
	if !n.ok {
		return MaybeNull[T]()
	}
	return MaybeOf(n.val)
}

// Undefinable is a value or undefined. The zero value is undefined.
type Undefinable[T any] struct {
	val T
	ok  bool
}

func UndefinableOf[T any](v T) Undefinable[T] {
	return Undefinable[T]{val: v, ok: true}
}

func Undefined[T any]() Undefinable[T] {
	return Undefinable[T]{}
}

func (u Undefinable[T]) IsUndefined() bool {
	return !u.ok
}

func (u Undefinable[T]) IsNotUndefined() bool {
	return u.ok
}

func (u Undefinable[T]) Get() (T, bool) {
	return u.val, u.ok
}

func (u Undefinable[T]) Maybe() Maybe[T] {
	if !u.ok {
		return MaybeUndefined[T]()
	}
	return MaybeOf(u.val)
}
