package cloudstack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured error returned by CloudStack inside a response envelope.
type APIError struct {
	Command     string
	ErrorCode   int
	CSErrorCode int
	ErrorText   string
}

func (e *APIError) Error() string {
	if e.ErrorCode == 0 {
		return fmt.Sprintf("%s failed: %s", e.Command, e.ErrorText)
	}
	return fmt.Sprintf("%s failed (%d): %s", e.Command, e.ErrorCode, e.ErrorText)
}

// TransportError is any failure to get a decodable answer from the API:
// connection errors, timeouts, HTTP errors without an error envelope and
// malformed bodies.
type TransportError struct {
	Command    string
	StatusCode int // zero when no HTTP response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Command, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt could succeed.
func (e *TransportError) Retryable() bool {
	if errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded) {
		return false
	}
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

// IsAPIError checks if err carries a structured CloudStack error.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError checks if err is a transport failure.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// isRetryable is the retry classifier for read-only calls.
func isRetryable(err error) bool {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr.Retryable()
	}
	return false
}
