package randomuser

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed indicates the request did not complete at the transport level.
	ErrRequestFailed = errors.New("randomuser: request failed")

	// ErrUnexpectedStatus indicates the API answered with a non-2xx status code.
	ErrUnexpectedStatus = errors.New("randomuser: unexpected response status")

	// ErrInvalidShape indicates the body was not the expected JSON structure.
	ErrInvalidShape = errors.New("randomuser: unexpected response shape")
)

// StatusError carries the status of a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API responded with status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
