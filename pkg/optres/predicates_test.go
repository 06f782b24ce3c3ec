package optres

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotNullAndUndefined_FalsyButPresent(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotNullAndUndefined(MaybeOf(0)))
	assert.True(t, IsNotNullAndUndefined(MaybeOf(false)))
	assert.True(t, IsNotNullAndUndefined(MaybeOf("")))
	assert.True(t, IsNotNullAndUndefined(MaybeOf(math.NaN())))
	assert.True(t, IsNotNullAndUndefined(MaybeOf[error](nil)))

	assert.False(t, IsNotNullAndUndefined(MaybeNull[int]()))
	assert.False(t, IsNotNullAndUndefined(MaybeUndefined[int]()))
}

func TestMaybe_ZeroValueIsUndefined(t *testing.T) {
	t.Parallel()

	var m Maybe[int]
	assert.True(t, m.IsUndefined())
	assert.False(t, m.IsNull())
	assert.True(t, IsNullOrUndefined(m))

	n := MaybeNull[int]()
	assert.True(t, n.IsNull())
	assert.False(t, n.IsUndefined())
	assert.True(t, IsNullOrUndefined(n))
}

func TestNullableAndUndefinable_ZeroValues(t *testing.T) {
	t.Parallel()

	var n Nullable[string]
	assert.True(t, IsNull(n))
	assert.False(t, IsNotNull(n))
	assert.True(t, IsNotNull(NullableOf("")))

	var u Undefinable[string]
	assert.True(t, IsUndefined(u))
	assert.False(t, IsNotUndefined(u))
	assert.True(t, IsNotUndefined(UndefinableOf("")))
}

func TestPredicates_Idempotent(t *testing.T) {
	t.Parallel()

	some := Some(1)
	none := None[int]()
	ok := Ok[int, string](1)
	bad := Err[int]("x")
	m := MaybeOf(0)

	for i := 0; i < 2; i++ {
		assert.True(t, IsSome(some))
		assert.False(t, IsNone(some))
		assert.True(t, IsNone(none))
		assert.True(t, IsOk(ok))
		assert.False(t, IsErr(ok))
		assert.True(t, IsErr(bad))
		assert.True(t, IsNotNullAndUndefined(m))
	}
}

func TestResult_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[int, error]
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsOk())
	assert.False(t, r.IsErr())

	assert.False(t, Ok[int, error](0).IsEmpty())
	assert.False(t, Err[int, error](nil).IsEmpty())
	assert.True(t, Err[int, error](nil).IsErr())
}

func TestResult_ValueEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[int, string](1), Ok[int, string](1))
	assert.NotEqual(t, Ok[int, string](1), Err[int]("1"))
}

func TestNullableFrom_OnlyNilIsNull(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error

	assert.True(t, NullableFrom(p).IsNull())
	assert.True(t, NullableFrom(m).IsNull())
	assert.True(t, NullableFrom(s).IsNull())
	assert.True(t, NullableFrom(f).IsNull())
	assert.True(t, NullableFrom(e).IsNull())

	assert.True(t, NullableFrom(0).IsNotNull())
	assert.True(t, NullableFrom(false).IsNotNull())
	assert.True(t, NullableFrom("").IsNotNull())
	assert.True(t, NullableFrom([]int{}).IsNotNull())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPtr[int](nil).IsNull())

	v := 7
	got, ok := FromPtr(&v).Get()
	require.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestNarrowToMaybe(t *testing.T) {
	t.Parallel()

	assert.True(t, Null[int]().Maybe().IsNull())
	assert.True(t, Undefined[int]().Maybe().IsUndefined())

	v, ok := NullableOf(3).Maybe().Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = UndefinableOf(4).Maybe().Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestAbsentMaybe(t *testing.T) {
	t.Parallel()

	assert.True(t, AbsentMaybe[string](MaybeNull[int]()).IsNull())
	assert.True(t, AbsentMaybe[string](MaybeUndefined[int]()).IsUndefined())
	assert.PanicsWithError(t, ErrMsgAbsentFromValue, func() {
		AbsentMaybe[string](MaybeOf(1))
	})
}

func TestMutOption_MutateInPlace(t *testing.T) {
	t.Parallel()

	o := MutSome([]int{1})
	p := o.Ptr()
	require.NotNil(t, p)
	*p = append(*p, 2)

	v, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	o.Set([]int{3})
	v, _ = o.Option().Get()
	assert.Equal(t, []int{3}, v)
	assert.True(t, o.Option().IsSome())
}

func TestMutOption_None(t *testing.T) {
	t.Parallel()

	o := MutNone[int]()
	assert.True(t, o.IsNone())
	assert.Nil(t, o.Ptr())
	assert.True(t, o.Option().IsNone())
	assert.PanicsWithError(t, ErrMsgMutOptionSetOnNone, func() {
		o.Set(1)
	})
}

func TestErrorIdentities(t *testing.T) {
	t.Parallel()

	var err error = NewContractError("x")
	assert.True(t, errors.Is(err, ErrContract))
	assert.False(t, errors.Is(err, ErrType))
	assert.Equal(t, "x", err.Error())

	err = NewTypeError("y")
	assert.True(t, errors.Is(err, ErrType))
	assert.False(t, errors.Is(err, ErrContract))

	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "y", te.Msg)
}
