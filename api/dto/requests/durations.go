// ABOUTME: Request DTOs for the duration and clean endpoints
// ABOUTME: Provides length validation for incoming request bodies

package requests

import (
	"fmt"
	"unicode/utf8"

	"x2colon-api/core/errors"
)

const (
	// MinContentLength is the shortest accepted timestamp content, in characters
	MinContentLength = 2

	// MinScriptLength is the shortest accepted script, in characters
	MinScriptLength = 1
)

// TimestampRequest represents the request body for calculating durations.
// The minLength tags document the contract; Validate enforces it so short
// bodies are answered with 400.
type TimestampRequest struct {
	// Content is free-form text containing ranges such as (0:00-1:23)
	Content string `json:"content" minLength:"2" doc:"Text containing timestamp ranges" example:"Intro (0:00-0:30) + (0:45-1:15)"`
}

// Validate checks the request body
func (r *TimestampRequest) Validate() error {
	return minLength("content", r.Content, MinContentLength)
}

// CleanRequest represents the request body for cleaning a script
type CleanRequest struct {
	// Script is the text to strip timestamp ranges from
	Script string `json:"script" minLength:"1" doc:"Script text to remove timestamp ranges from" example:"Start (0:00-0:10) end"`
}

// Validate checks the request body
func (r *CleanRequest) Validate() error {
	return minLength("script", r.Script, MinScriptLength)
}

func minLength(field, value string, min int) error {
	if utf8.RuneCountInString(value) < min {
		return &errors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		}
	}
	return nil
}
