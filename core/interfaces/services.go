// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the duration service contract consumed by handlers and the CLI

package interfaces

import (
	"context"

	"x2colon-api/core/domain"
)

// DurationService calculates range durations and cleans scripts
type DurationService interface {
	// Calculate sums every timestamp range in content
	Calculate(ctx context.Context, content string) (*domain.ParseOutput, error)

	// Clean removes every timestamp range from script; it never fails
	Clean(ctx context.Context, script string) string
}
