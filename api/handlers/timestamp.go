// ABOUTME: Duration handler for the Huma API
// ABOUTME: Provides the POST /timestamp endpoint summing timestamp ranges in text

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"x2colon-api/api/dto/mappers"
	"x2colon-api/api/dto/requests"
	"x2colon-api/api/dto/responses"
	"x2colon-api/core/interfaces"
)

// TimestampHandler handles duration calculation requests
type TimestampHandler struct {
	service interfaces.DurationService
}

// NewTimestampHandler creates a new timestamp handler
func NewTimestampHandler(service interfaces.DurationService) *TimestampHandler {
	return &TimestampHandler{service: service}
}

// RegisterRoutes registers the duration routes
func (h *TimestampHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "calculateDurations",
		Method:      http.MethodPost,
		Path:        "/timestamp",
		Summary:     "Calculate durations",
		Description: "Finds timestamp ranges such as (0:00-1:23) in the content, groups '+'-joined ranges into lines and sums the elapsed time",
		Tags:        []string{"Durations"},

		// Validate reports length violations as 400 instead of huma's 422
		SkipValidateBody: true,
	}, h.CalculateDurations)
}

// TimestampInput defines the input for the CalculateDurations operation
type TimestampInput struct {
	Body requests.TimestampRequest
}

// TimestampOutput defines the output for the CalculateDurations operation
type TimestampOutput struct {
	Body responses.TimestampResponse
}

// CalculateDurations handles the POST /timestamp endpoint
func (h *TimestampHandler) CalculateDurations(ctx context.Context, input *TimestampInput) (*TimestampOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, toHumaError(err)
	}

	out, err := h.service.Calculate(ctx, input.Body.Content)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TimestampOutput{Body: mappers.ToTimestampResponse(out)}, nil
}
