package optres

import "errors"

const (
	ErrMsgMutOptionSetOnNone = "`MutOption.Set()` must not be called on `None`"
	ErrMsgAbsentFromValue    = "cannot carry an absent sentinel from a present value"
)

var (
	// ErrContract matches every *ContractError with errors.Is.
	ErrContract = errors.New("contract violation")

	// ErrType matches every *TypeError with errors.Is.
	ErrType = errors.New("type error")
)

// ContractError is raised when a callback or default produced a value the
// combinator's output contract forbids. Error returns the literal message.
type ContractError struct {
	Msg string
}

func NewContractError(msg string) *ContractError {
	return &ContractError{Msg: msg}
}

func (e *ContractError) Error() string {
	return e.Msg
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// TypeError is raised when a callback returned a value of the wrong shape.
type TypeError struct {
	Msg string
}

func NewTypeError(msg string) *TypeError {
	return &TypeError{Msg: msg}
}

func (e *TypeError) Error() string {
	return e.Msg
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}
