// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"
	"net/http"

	coreerrors "keyword-analysis-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if coreerrors.IsAllDomainsFailed(err) {
		// One generic message regardless of how many domains were attempted
		return huma.Error503ServiceUnavailable("Ad data is currently unavailable for the requested domains")
	}

	if coreerrors.IsProvider(err) {
		var providerErr *coreerrors.ProviderError
		if errors.As(err, &providerErr) {
			switch {
			case providerErr.StatusCode == http.StatusTooManyRequests:
				return huma.Error429TooManyRequests("Rate limited by upstream provider")
			case providerErr.StatusCode >= 500 || providerErr.StatusCode == 0:
				return huma.Error503ServiceUnavailable("Upstream provider error", err)
			default:
				return huma.Error502BadGateway("Unexpected upstream provider response", err)
			}
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
