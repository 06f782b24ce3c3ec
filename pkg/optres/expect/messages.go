package expect

const (
	ErrMsgSelector                   = "selector must not return an absent value"
	ErrMsgDefMustNotBeNull           = "`def` must not be `null`"
	ErrMsgDefMustNotBeUndefined      = "`def` must not be `undefined`"
	ErrMsgDefReturnedNull            = "`def` must not return `null`"
	ErrMsgSelectorReturnedUndefined  = "`selector` must not return `undefined`"
	ErrMsgDefReturnedUndefined       = "`def` must not return `undefined`"
	ErrMsgDefReturnedNullOrUndefined = "`def` must not return `null` or `undefined`"

	ErrMsgUnwrapNone      = "called `unwrap()` on a `None` value"
	ErrMsgUnwrapNull      = "called `unwrap()` on a `null` value"
	ErrMsgUnwrapUndefined = "called `unwrap()` on an `undefined` value"
	ErrMsgUnwrapAbsent    = "called `unwrap()` on a `null` or `undefined` value"
	ErrMsgUnwrapErr       = "called `unwrap()` on an `Err` value"
	ErrMsgUnwrapErrOnOk   = "called `unwrapErr()` on an `Ok` value"
)
