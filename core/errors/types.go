// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates bad input, upstream failures and credential storage failures

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error on caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a failed call to an upstream API.
// StatusCode is 0 when the request never produced a response.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
	Err        error
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("external API error from %s: %s", e.API, e.Message)
	}
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport or decode error, if any
func (e *ExternalAPIError) Unwrap() error {
	return e.Err
}

// StorageError represents a failure of the backing store, as opposed to a miss
type StorageError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the backend error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
