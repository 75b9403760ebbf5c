// ABOUTME: Search facade driving the multi-domain fan-out and result merge
// ABOUTME: The single entry point consumed by the HTTP layer for competitor ad searches

package ads

import (
	"context"

	"keyword-analysis-api/core/domain"
	coreerrors "keyword-analysis-api/core/errors"
	"keyword-analysis-api/core/interfaces"
	"keyword-analysis-api/pkg/utils/domainutil"
)

// Service orchestrates multi-domain ad searches. It holds no state between
// calls: repeating an identical request performs a fresh fan-out.
type Service struct {
	deps     interfaces.Dependencies
	provider interfaces.AdsProvider
}

// NewService creates a new ads search service.
func NewService(deps interfaces.Dependencies, provider interfaces.AdsProvider) *Service {
	return &Service{
		deps:     deps,
		provider: provider,
	}
}

// Search fans one request out into one provider call per domain, tolerates
// partial failures and merges the successful results into one CombinedResult.
// It fails with *errors.ValidationError when no usable domain remains after
// normalization, and with *errors.AllDomainsFailedError when every call
// failed. Per-domain failures are logged and attached as metadata.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (*domain.CombinedResult, error) {
	domains := domainutil.NormalizeAll(req.Domains)
	if len(domains) == 0 {
		return nil, &coreerrors.ValidationError{
			Field:   "domains",
			Message: "at least one domain is required",
		}
	}

	succeeded, failed := s.dispatch(ctx, domains, req.Params())

	for _, failure := range failed {
		s.logFailure(failure)
	}

	if len(succeeded) == 0 {
		return nil, &coreerrors.AllDomainsFailedError{Attempted: len(domains)}
	}

	result := combine(succeeded)
	result.Failures = failed

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Domain search completed", map[string]interface{}{
			"requested": len(domains),
			"succeeded": len(succeeded),
			"failed":    len(failed),
			"ads":       result.AdsCount,
		})
	}

	return result, nil
}

// Locations returns the countries available for filtering searches.
func (s *Service) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.provider.Locations(ctx)
}

// Languages returns the supported language filters.
func (s *Service) Languages() []domain.Language {
	return domain.SupportedLanguages()
}

func (s *Service) logFailure(failure domain.DomainFailure) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn("Domain search failed", map[string]interface{}{
		"domain": failure.Domain,
		"status": failure.StatusCode,
		"error":  failure.Message,
	})
}
