// Package fault defines the error kinds surfaced by the service layer.
package fault

import (
	"context"
	"errors"
)

type Kind int

const (
	Internal Kind = iota
	InvalidArgument
	AlreadyExists
	NotFound
	Unimplemented
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case AlreadyExists:
		return "already exists"
	case NotFound:
		return "not found"
	case Unimplemented:
		return "unimplemented"
	default:
		return "internal"
	}
}

// Error is a classified failure. Msg is safe to return to callers; Err is the cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// MessageOf returns the caller-facing message of err.
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Kind != Internal && fe.Msg != "" {
		return fe.Msg
	}
	return "internal error"
}

func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
