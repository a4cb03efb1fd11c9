package backend

import (
	"fmt"
)

type ErrorCode int32

const (
	// not using iota here to be more explicit
	ErrorCodeUnknown       ErrorCode = 0
	ErrorCodeNotFound      ErrorCode = 1
	ErrorCodeAlreadyExists ErrorCode = 2
	ErrorCodeNotEmpty      ErrorCode = 3
	ErrorCodeInvalid       ErrorCode = 4
)

type Error struct {
	code   ErrorCode
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Code() ErrorCode {
	return e.code
}

func newNotFoundError(format string, args ...interface{}) *Error {
	return &Error{code: ErrorCodeNotFound, Reason: fmt.Sprintf(format, args...)}
}

func newAlreadyExistsError(format string, args ...interface{}) *Error {
	return &Error{code: ErrorCodeAlreadyExists, Reason: fmt.Sprintf(format, args...)}
}

func newNotEmptyError(format string, args ...interface{}) *Error {
	return &Error{code: ErrorCodeNotEmpty, Reason: fmt.Sprintf(format, args...)}
}

func newInvalidError(format string, args ...interface{}) *Error {
	return &Error{code: ErrorCodeInvalid, Reason: fmt.Sprintf(format, args...)}
}
