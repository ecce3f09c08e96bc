// ABOUTME: Health check handler

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stevedylandev/wholenote-server/api/dto/responses"
)

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealthRoutes registers GET /health
func RegisterHealthRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
	})
}
