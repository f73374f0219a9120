// ABOUTME: Script cleaning handler for the Huma API
// ABOUTME: Provides the POST /clean endpoint removing timestamp ranges from text

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"x2colon-api/api/dto/requests"
	"x2colon-api/api/dto/responses"
	"x2colon-api/core/interfaces"
)

// CleanHandler handles script cleaning requests
type CleanHandler struct {
	service interfaces.DurationService
}

// NewCleanHandler creates a new clean handler
func NewCleanHandler(service interfaces.DurationService) *CleanHandler {
	return &CleanHandler{service: service}
}

// RegisterRoutes registers the clean route
func (h *CleanHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "cleanScript",
		Method:      http.MethodPost,
		Path:        "/clean",
		Summary:     "Clean a script",
		Description: "Removes timestamp ranges and their '+' connectors from the script while keeping the prose readable",
		Tags:        []string{"Durations"},

		// Validate reports length violations as 400 instead of huma's 422
		SkipValidateBody: true,
	}, h.CleanScript)
}

// CleanInput defines the input for the CleanScript operation
type CleanInput struct {
	Body requests.CleanRequest
}

// CleanOutput defines the output for the CleanScript operation
type CleanOutput struct {
	Body responses.CleanResponse
}

// CleanScript handles the POST /clean endpoint
func (h *CleanHandler) CleanScript(ctx context.Context, input *CleanInput) (*CleanOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, toHumaError(err)
	}

	output := &CleanOutput{}
	output.Body.Cleaned = h.service.Clean(ctx, input.Body.Script)
	return output, nil
}
