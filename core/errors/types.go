// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ProviderError represents a failed provider call for one domain.
// StatusCode is 0 when the call failed before an HTTP status was received
// (transport failure) or when a success body could not be decoded.
type ProviderError struct {
	Domain     string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider error for %s: %s", e.Domain, e.Message)
	}
	return fmt.Sprintf("provider error for %s: %d - %s", e.Domain, e.StatusCode, e.Message)
}

// AllDomainsFailedError represents a search where every domain's provider
// call failed. It is the only fan-out outcome that fails the whole request.
type AllDomainsFailedError struct {
	Attempted int
}

// Error implements the error interface
func (e *AllDomainsFailedError) Error() string {
	return fmt.Sprintf("all %d domains failed", e.Attempted)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// IsAllDomainsFailed checks if an error is an AllDomainsFailedError
func IsAllDomainsFailed(err error) bool {
	var allFailedErr *AllDomainsFailedError
	return errors.As(err, &allFailedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
