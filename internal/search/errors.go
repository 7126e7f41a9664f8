// Package search provides the client for the hosted recruiting-data API.
package search

import (
	"fmt"
	"net/http"
)

// RequestError represents a transport-level failure before any HTTP status
// was received. Always retryable.
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search request failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("search request failed: %s", e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// APIError represents a non-2xx response from the search API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search API returned %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the failure class is transient. Server errors
// and rate limiting are retryable; other client errors are not.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// DecodeError represents a response body that could not be parsed.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search response decode failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("search response decode failed: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsRetryable classifies an error from the client as transient or terminal.
func IsRetryable(err error) bool {
	switch e := err.(type) {
	case *RequestError:
		return true
	case *APIError:
		return e.Retryable()
	default:
		return false
	}
}
