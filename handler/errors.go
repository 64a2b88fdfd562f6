package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was used outside a DataStar request.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError carries a status code and a short message safe to show clients.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "bad request"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "internal server error"}
)
