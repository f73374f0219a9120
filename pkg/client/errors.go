// ABOUTME: Error types returned by the x2colon API client
// ABOUTME: Carries the HTTP status and the server's problem detail for failed calls

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation means the server rejected the input (HTTP 4xx)
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeServer means the server failed (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"

	// ErrorTypeNetwork indicates the request never produced a response
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeDecoding indicates an unreadable response body
	ErrorTypeDecoding ErrorType = "decoding"

	// ErrorTypeConfiguration indicates a bad client option
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a failed API call
type Error struct {
	Type       ErrorType
	StatusCode int
	// Detail is the server's problem detail, e.g. "No valid timestamps found"
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Detail)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(errType ErrorType, detail string, cause error) *Error {
	return &Error{Type: errType, Detail: detail, Cause: cause}
}

// problem is the RFC 7807 body huma writes for errors
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func statusError(status int, p problem) *Error {
	errType := ErrorTypeServer
	if status < 500 {
		errType = ErrorTypeValidation
	}

	detail := p.Detail
	if detail == "" {
		detail = p.Title
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	return &Error{Type: errType, StatusCode: status, Detail: detail}
}

// IsValidationError reports whether the server rejected the input
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeValidation
}

// IsServerError reports whether the server failed to handle the request
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeServer
}

// IsNetworkError reports whether the request failed before a response arrived
func IsNetworkError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeNetwork
}
