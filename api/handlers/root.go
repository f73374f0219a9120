// ABOUTME: Welcome and health handlers for the Huma API
// ABOUTME: Provides GET / and GET /health

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"x2colon-api/api/dto/responses"
)

// WelcomeMessage is returned by GET /
const WelcomeMessage = "Welcome to x2-colon!"

// RootHandler serves the welcome and health endpoints
type RootHandler struct {
	version string
}

// NewRootHandler creates a new root handler reporting version on /health
func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

// RegisterRoutes registers the root routes
func (h *RootHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"Meta"},
	}, h.Welcome)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports that the service is up and which version is running",
		Tags:        []string{"Meta"},
	}, h.Health)
}

// WelcomeOutput defines the output for GET /
type WelcomeOutput struct {
	Body responses.MessageResponse
}

// Welcome handles the GET / endpoint
func (h *RootHandler) Welcome(ctx context.Context, input *struct{}) (*WelcomeOutput, error) {
	return &WelcomeOutput{Body: responses.MessageResponse{Message: WelcomeMessage}}, nil
}

// HealthOutput defines the output for GET /health
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *RootHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok", Version: h.version}}, nil
}
