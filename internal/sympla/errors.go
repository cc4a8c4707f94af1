package sympla

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a call is attempted without both an API
// token and a selected version. The request is never issued.
var ErrMissingInput = errors.New("API token and version are required")

// ErrUnauthorized maps HTTP 401: the token is invalid or expired.
var ErrUnauthorized = errors.New("invalid or expired API token")

// UpstreamError is any non-200, non-401 response from the API.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: status %d", e.Status)
}

// TransportError wraps a network failure or an unreadable response body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
