// ABOUTME: Provider interface for the external ad-metadata and clustering collaborator
// ABOUTME: The core invokes this contract per domain; it never implements the analysis itself

package interfaces

import (
	"context"

	"keyword-analysis-api/core/domain"
)

// AdsProvider is the external collaborator that, given one domain and search
// parameters, returns the domain's ads plus optional per-domain keyphrase
// clustering. Implementations make exactly one remote call per invocation
// and must not mutate their arguments.
type AdsProvider interface {
	// FetchDomainAds retrieves ads (and clustering, when the provider
	// computed it) for a single domain. Failures are reported as
	// *errors.ProviderError.
	FetchDomainAds(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error)

	// Locations returns the countries available for ad filtering.
	Locations(ctx context.Context) ([]domain.Location, error)
}
