package optres

type Option[T any] struct {
	val T
	ok  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		val: v,
		ok:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// MutOption allows to mutate the payload of Some in place to save needless copies.
// The discriminant itself is read-only. There is no locking: the owner is
// responsible for excluding concurrent access.
type MutOption[T any] struct {
	val T
	ok  bool
}

func MutSome[T any](v T) *MutOption[T] {
	return &MutOption[T]{
		val: v,
		ok:  true,
	}
}

func MutNone[T any]() *MutOption[T] {
	return &MutOption[T]{}
}

func (o *MutOption[T]) IsSome() bool {
	return o.ok
}

func (o *MutOption[T]) IsNone() bool {
	return !o.ok
}

func (o *MutOption[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Ptr returns a pointer to the payload, or nil for None.
func (o *MutOption[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	return &o.val
}

// Set overwrites the payload of Some. It panics on None.
func (o *MutOption[T]) Set(v T) {
	if !o.ok {
		panic(NewContractError(ErrMsgMutOptionSetOnNone))
	}
	o.val = v
}

// Option returns an immutable snapshot.
func (o *MutOption[T]) Option() Option[T] {
	return Option[T]{val: o.val, ok: o.ok}
}
