// Package errs carries the single error kind the service models: a message
// paired with an HTTP status. The status travels as the transport status and
// is never duplicated in the body.
package errs

import (
	"fmt"
	"net/http"
)

// Error is the wire shape of every non-2xx response.
type Error struct {
	// The error message
	Msg string `json:"msg"`
	// The http status code, carried out-of-band
	Status int `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Msg)
}

// New builds an Error with an explicit status.
func New(status int, msg string) *Error {
	return &Error{Msg: msg, Status: status}
}

func BadRequest(msg string) *Error { return New(http.StatusBadRequest, msg) }
func NotFound(msg string) *Error   { return New(http.StatusNotFound, msg) }
func Internal(msg string) *Error   { return New(http.StatusInternalServerError, msg) }
