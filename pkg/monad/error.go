package monad

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of error.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// ErrorMessage is the human readable part of an Error.
type ErrorMessage string

func (m ErrorMessage) String() string {
	return string(m)
}

// Error describes a domain failure carried by a failed Result.
// Cause is kept for diagnostics only and is never interpreted.
type Error struct {
	Code    ErrorCode
	Message ErrorMessage
	Cause   error
	// Status is an optional HTTP status, zero when unset.
	Status int
}

// NewError creates an Error. Code and message are not validated.
func NewError(code ErrorCode, message ErrorMessage, cause ...error) Error {
	e := Error{Code: code, Message: message}
	if len(cause) > 0 {
		e.Cause = cause[0]
	}
	return e
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error lets an Error travel as a plain error value.
func (e Error) Error() string {
	return e.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// WithStatus returns a copy of e carrying the given HTTP status.
func (e Error) WithStatus(status int) Error {
	e.Status = status
	return e
}

// HTTPStatus returns the attached status or 500 when none was set.
func (e Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// IsZero reports whether e carries neither code nor message.
func (e Error) IsZero() bool {
	return e.Code == "" && e.Message == ""
}
