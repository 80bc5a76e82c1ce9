package adapter

import (
	"errors"
	"net/http"
)

// Status-class sentinels. A [*ResponseError] unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrMalformedResponse is returned when a 2xx body does not have the
	// shape the operation expects.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrDecodeRejected is returned when the backend answers a decode
	// request with an error object.
	ErrDecodeRejected = errors.New("uri rejected by decoder")

	// ErrAccountRejected is returned when an account lookup is answered with
	// an error object.
	ErrAccountRejected = errors.New("account request rejected")
)

// ResponseError is a non-2xx backend answer. Error returns the response body
// unchanged so it can be shown to the user as is.
type ResponseError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}

// Unwrap returns the status-class sentinel.
func (e *ResponseError) Unwrap() error {
	return e.kind
}
