// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses with a {"error": msg} body

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// ErrorBody is the body of every error response
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message" example:"Invalid Spotify URL"`
}

// Error implements the error interface
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorBody) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return &ErrorBody{status: status, Message: msg}
	}
}

// toHumaError converts domain errors to HTTP errors. Validation errors keep
// their message; everything else becomes a 500 with internalMsg.
func toHumaError(err error, internalMsg string) error {
	if err == nil {
		return nil
	}

	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		return huma.Error400BadRequest(validationErr.Message)
	}

	return huma.Error500InternalServerError(internalMsg)
}

// logFailure records a failed request, keeping storage and upstream failures apart
func logFailure(logger interfaces.Logger, operation string, err error) {
	if logger == nil || err == nil || coreerrors.IsValidation(err) {
		return
	}

	fields := map[string]interface{}{
		"operation": operation,
		"error":     err.Error(),
	}

	var storageErr *coreerrors.StorageError
	var apiErr *coreerrors.ExternalAPIError
	switch {
	case errors.As(err, &storageErr):
		fields["store_op"] = storageErr.Op
		fields["key"] = storageErr.Key
		logger.Error("Credential store failure", fields)
	case errors.As(err, &apiErr):
		fields["api"] = apiErr.API
		fields["upstream_status"] = apiErr.StatusCode
		logger.Error("Upstream API failure", fields)
	default:
		logger.Error("Request failed", fields)
	}
}
