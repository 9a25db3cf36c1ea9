package ledgerapi

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code. It prefixes every error message so
// it survives the trip through the peer and gateway as plain text.
type Code string

const (
	CodeUnknown                Code = "UNKNOWN"
	CodeNotFound               Code = "NOT_FOUND"
	CodeAlreadyExists          Code = "ALREADY_EXISTS"
	CodeOwnerMismatch          Code = "OWNER_MISMATCH"
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"
	CodeDecode                 Code = "DECODE_ERROR"
	CodeInvalidArgument        Code = "INVALID_ARGUMENT"
)

var knownCodes = []Code{
	CodeNotFound,
	CodeAlreadyExists,
	CodeOwnerMismatch,
	CodeInvalidStateTransition,
	CodeDecode,
	CodeInvalidArgument,
}

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrNotFound               = &Error{Code: CodeNotFound}
	ErrAlreadyExists          = &Error{Code: CodeAlreadyExists}
	ErrOwnerMismatch          = &Error{Code: CodeOwnerMismatch}
	ErrInvalidStateTransition = &Error{Code: CodeInvalidStateTransition}
	ErrDecode                 = &Error{Code: CodeDecode}
	ErrInvalidArgument        = &Error{Code: CodeInvalidArgument}
)

// Error is a coded ledger error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Errorf builds a coded error with a formatted message.
func Errorf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds a coded error around a cause.
func WrapError(code Code, err error, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the code of err. Errors that crossed a process boundary lost
// their type, so the message is scanned for a known code prefix as well.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	msg := err.Error()
	found, first := CodeUnknown, len(msg)
	for _, code := range knownCodes {
		if idx := strings.Index(msg, string(code)+":"); idx >= 0 && idx < first {
			found, first = code, idx
		}
	}
	return found
}
