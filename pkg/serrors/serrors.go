// Package serrors defines semantic errors: errors tagged with a small closed
// set of kinds that outer layers (the HTTP handlers in particular) can map to
// transport-level status codes without inspecting message strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the marker interface implemented by the sentinels created with
// NewKind. It separates semantic categories from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a comparable sentinel for a semantic error category. The
// sentinel matches through errors.Is/As when carried by an Error.
func NewKind(name string) Kind { return kind{name: name} }

// Kinds used across the service. Validation failures inside the risk engine
// are ErrBadRequest; malformed or mistyped request bodies are
// ErrUnprocessable, keeping the two failure tiers distinct all the way to the
// HTTP layer.
var (
	// ErrBadRequest marks well-formed input whose values are out of range.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnprocessable marks request bodies that fail schema-level decoding.
	ErrUnprocessable = NewKind("UNPROCESSABLE")
	// ErrNotFound marks requests for routes or entities that do not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal marks unexpected server-side failures.
	ErrInternal = NewKind("INTERNAL")
)

// Error couples a Kind with an optional message and an optional wrapped
// cause. errors.Is and errors.As traverse both the kind sentinel and the
// cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds a semantic error carrying the kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error that also records err as its cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds a semantic error with no message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause so errors.Unwrap/Is/As can walk the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel first, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel first, then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic category of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
