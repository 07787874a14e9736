package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar is returned by SSE responses rendered for a regular request.
	ErrNotDataStar = NewHTTPError(http.StatusBadRequest, "stream requires a datastar connection")
	// ErrBadRequest is joined with binder failures.
	ErrBadRequest = NewHTTPError(http.StatusBadRequest, "invalid request")
)

// HTTPError carries a status code and a user-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	return e.Message
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a response that hands err to the error handler.
func Error(err error) Response {
	return errorResponse{err: err}
}
