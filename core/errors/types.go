// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for range scanning, validation and API responses

package errors

import (
	"errors"
	"fmt"
)

// MalformedRangeError is returned when a parenthesized construct looks like a
// timestamp range but does not parse as one
type MalformedRangeError struct {
	Text string
}

// Error implements the error interface
func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("Malformed timestamp: %s", e.Text)
}

// InvalidMinutesError represents a minutes field above 59
type InvalidMinutesError struct {
	Range string
	Value uint64
}

// Error implements the error interface
func (e *InvalidMinutesError) Error() string {
	return fmt.Sprintf("Invalid timestamp range: %s (minutes %d exceeds 59, use H:MM:SS format)", e.Range, e.Value)
}

// InvalidSecondsError represents a seconds field above 59
type InvalidSecondsError struct {
	Range string
	Value uint64
}

// Error implements the error interface
func (e *InvalidSecondsError) Error() string {
	return fmt.Sprintf("Invalid timestamp range: %s (seconds %d exceeds 59)", e.Range, e.Value)
}

// EndBeforeStartError represents a range whose end precedes its start
type EndBeforeStartError struct {
	Range string
}

// Error implements the error interface
func (e *EndBeforeStartError) Error() string {
	return fmt.Sprintf("Invalid timestamp range: %s (end time is before start time)", e.Range)
}

// DurationOverflowError is returned when a running total no longer fits the counter
type DurationOverflowError struct {
	Range string
}

// Error implements the error interface
func (e *DurationOverflowError) Error() string {
	return fmt.Sprintf("Duration overflow: total exceeds supported range at %s", e.Range)
}

// NoRangesFoundError is returned when the input holds no timestamp ranges
type NoRangesFoundError struct{}

// Error implements the error interface
func (e *NoRangesFoundError) Error() string {
	return "No valid timestamps found"
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsMalformedRange checks if an error is a MalformedRangeError
func IsMalformedRange(err error) bool {
	var target *MalformedRangeError
	return errors.As(err, &target)
}

// IsInvalidRange checks if an error reports a range that parsed but failed its bounds
func IsInvalidRange(err error) bool {
	var minutesErr *InvalidMinutesError
	var secondsErr *InvalidSecondsError
	var orderErr *EndBeforeStartError
	return errors.As(err, &minutesErr) || errors.As(err, &secondsErr) || errors.As(err, &orderErr)
}

// IsNoRangesFound checks if an error is a NoRangesFoundError
func IsNoRangesFound(err error) bool {
	var target *NoRangesFoundError
	return errors.As(err, &target)
}

// IsOverflow checks if an error is a DurationOverflowError
func IsOverflow(err error) bool {
	var target *DurationOverflowError
	return errors.As(err, &target)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDurationError reports whether err is caused by the submitted text rather
// than by the server
func IsDurationError(err error) bool {
	return IsMalformedRange(err) || IsInvalidRange(err) || IsNoRangesFound(err) || IsOverflow(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
