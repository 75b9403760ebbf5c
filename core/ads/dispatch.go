// ABOUTME: Fan-out orchestrator that queries the provider for every domain concurrently
// ABOUTME: Collects per-domain outcomes independently and preserves submission order

package ads

import (
	"context"
	"errors"
	"sync"

	"keyword-analysis-api/core/domain"
	coreerrors "keyword-analysis-api/core/errors"
)

// maxConcurrentFetches bounds how many provider calls run at once. It must
// be at least the maximum number of domains a single request admits, so no
// domain's call is ever serialized behind another's completion.
const maxConcurrentFetches = 20

// dispatchOutcome holds one domain's settled call, in its submission slot.
type dispatchOutcome struct {
	result *domain.DomainResult
	err    error
}

// dispatch invokes the provider for every domain concurrently and collects
// each call's outcome independently. One domain's failure never cancels or
// delays another's in-flight call. The returned slices follow the original
// submission order, not completion order, so output is deterministic
// regardless of network timing.
func (s *Service) dispatch(ctx context.Context, domains []string, params domain.SearchParams) ([]domain.DomainResult, []domain.DomainFailure) {
	outcomes := make([]dispatchOutcome, len(domains))
	semaphore := make(chan struct{}, maxConcurrentFetches)

	var wg sync.WaitGroup
	for i, d := range domains {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				outcomes[idx] = dispatchOutcome{err: ctx.Err()}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := s.provider.FetchDomainAds(ctx, target, params)
			outcomes[idx] = dispatchOutcome{result: result, err: err}
		}(i, d)
	}
	wg.Wait()

	// A batch cancelled mid-flight yields no successes: calls that settled
	// before the cancellation are discarded rather than returned as a
	// partial result.
	if ctxErr := ctx.Err(); ctxErr != nil {
		failed := make([]domain.DomainFailure, 0, len(domains))
		for i, outcome := range outcomes {
			if outcome.err != nil {
				failed = append(failed, toDomainFailure(domains[i], outcome.err))
				continue
			}
			failed = append(failed, toDomainFailure(domains[i], ctxErr))
		}
		return nil, failed
	}

	// Aggregation happens only after every call has settled; each goroutine
	// wrote to its own slot, so walking the slots is race free.
	succeeded := make([]domain.DomainResult, 0, len(domains))
	failed := make([]domain.DomainFailure, 0)

	for i, outcome := range outcomes {
		if outcome.err != nil {
			failed = append(failed, toDomainFailure(domains[i], outcome.err))
			continue
		}
		if outcome.result != nil {
			succeeded = append(succeeded, *outcome.result)
		}
	}

	return succeeded, failed
}

// toDomainFailure converts a per-domain error into failure metadata.
func toDomainFailure(target string, err error) domain.DomainFailure {
	var provErr *coreerrors.ProviderError
	if errors.As(err, &provErr) {
		return domain.DomainFailure{
			Domain:     target,
			StatusCode: provErr.StatusCode,
			Message:    provErr.Message,
		}
	}

	// Context cancellation and other non-provider errors carry no status.
	return domain.DomainFailure{
		Domain:  target,
		Message: err.Error(),
	}
}
