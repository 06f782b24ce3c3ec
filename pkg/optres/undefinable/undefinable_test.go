package undefinable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/expect"
)

func TestMapOrElse_Defined(t *testing.T) {
	t.Parallel()

	defCalled := 0
	selCalled := 0
	result := MapOrElse(optres.UndefinableOf(0), func() optres.Undefinable[string] {
		defCalled++
		return optres.UndefinableOf("def")
	}, func(v int) optres.Undefinable[string] {
		selCalled++
		return optres.UndefinableOf("sel")
	})

	assert.Equal(t, "sel", result)
	assert.Equal(t, 1, selCalled)
	assert.Equal(t, 0, defCalled)
}

func TestMapOrElse_Undefined(t *testing.T) {
	t.Parallel()

	defCalled := 0
	selCalled := 0
	result := MapOrElse(optres.Undefined[int](), func() optres.Undefinable[string] {
		defCalled++
		return optres.UndefinableOf("def")
	}, func(v int) optres.Undefinable[string] {
		selCalled++
		return optres.UndefinableOf("sel")
	})

	assert.Equal(t, "def", result)
	assert.Equal(t, 0, selCalled)
	assert.Equal(t, 1, defCalled)
}

func TestMapOrElse_Violations(t *testing.T) {
	t.Parallel()

	undef := func() optres.Undefinable[int] { return optres.Undefined[int]() }

	assert.PanicsWithError(t, expect.ErrMsgSelectorReturnedUndefined, func() {
		MapOrElse(optres.UndefinableOf(1), undef, func(int) optres.Undefinable[int] { return optres.Undefined[int]() })
	})
	assert.PanicsWithError(t, expect.ErrMsgDefReturnedUndefined, func() {
		MapOrElse(optres.Undefined[int](), undef, func(v int) optres.Undefinable[int] { return optres.UndefinableOf(v) })
	})
}

func TestMapOrElse_NullPayloadIsAllowed(t *testing.T) {
	t.Parallel()

	result := MapOrElse(optres.UndefinableOf(1), func() optres.Undefinable[optres.Nullable[int]] {
		return optres.UndefinableOf(optres.NullableOf(0))
	}, func(int) optres.Undefinable[optres.Nullable[int]] {
		return optres.UndefinableOf(optres.Null[int]())
	})

	assert.True(t, result.IsNull())
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	sel := func(v int) optres.Undefinable[int] { return optres.UndefinableOf(v * 2) }
	assert.Equal(t, 4, MapOr(optres.UndefinableOf(2), optres.UndefinableOf(-1), sel))
	assert.Equal(t, -1, MapOr(optres.Undefined[int](), optres.UndefinableOf(-1), sel))

	assert.PanicsWithError(t, expect.ErrMsgDefMustNotBeUndefined, func() {
		MapOr(optres.Undefined[int](), optres.Undefined[int](), sel)
	})
	assert.PanicsWithError(t, expect.ErrMsgSelectorReturnedUndefined, func() {
		MapOr(optres.UndefinableOf(2), optres.UndefinableOf(-1), func(int) optres.Undefinable[int] {
			return optres.Undefined[int]()
		})
	})
}

func TestAndOrFamily(t *testing.T) {
	t.Parallel()

	assert.True(t, And(optres.Undefined[int](), optres.UndefinableOf(1)).IsUndefined())
	assert.Equal(t, optres.UndefinableOf(1), And(optres.UndefinableOf(""), optres.UndefinableOf(1)))
	assert.Equal(t, optres.UndefinableOf(""), Or(optres.UndefinableOf(""), optres.UndefinableOf("x")))
	assert.Equal(t, optres.UndefinableOf("x"), Or(optres.Undefined[string](), optres.UndefinableOf("x")))
	assert.Equal(t, optres.UndefinableOf("y"), OrElse(optres.Undefined[string](), func() optres.Undefinable[string] {
		return optres.UndefinableOf("y")
	}))

	assert.Equal(t, optres.UndefinableOf(2), Map(optres.UndefinableOf(1), func(v int) int { return v + 1 }))
	assert.True(t, Map(optres.Undefined[int](), func(v int) int { return v + 1 }).IsUndefined())
	assert.True(t, AndThen(optres.UndefinableOf(1), func(int) optres.Undefinable[int] {
		return optres.Undefined[int]()
	}).IsUndefined())
}

func TestUnwrapAndBridge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, UnwrapOr(optres.UndefinableOf(0), 1))
	assert.Equal(t, 1, UnwrapOr(optres.Undefined[int](), 1))
	assert.Equal(t, 2, UnwrapOrElse(optres.Undefined[int](), func() int { return 2 }))
	assert.PanicsWithError(t, expect.ErrMsgUnwrapUndefined, func() { Unwrap(optres.Undefined[int]()) })
	assert.PanicsWithError(t, "missing", func() { Expect(optres.Undefined[int](), "missing") })

	seen := false
	src := optres.UndefinableOf(false)
	assert.Equal(t, src, Tap(src, func(bool) { seen = true }))
	assert.True(t, seen)

	assert.Equal(t, optres.Some(false), ToOption(src))
	assert.True(t, FromOption(optres.None[bool]()).IsUndefined())
}
