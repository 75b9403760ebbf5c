package ads

import (
	"context"
	"fmt"
	"testing"
	"time"

	"keyword-analysis-api/core/domain"
	coreerrors "keyword-analysis-api/core/errors"
	"keyword-analysis-api/core/interfaces"
)

func newDispatchService(provider *mockProvider) *Service {
	return NewService(interfaces.Dependencies{Logger: &mockLogger{}}, provider)
}

func TestDispatch_PreservesSubmissionOrderUnderRaces(t *testing.T) {
	// b.com deliberately responds last; submission order must still win.
	provider := &mockProvider{
		fetchFunc: func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			if target == "b.com" {
				time.Sleep(50 * time.Millisecond)
			}
			return &domain.DomainResult{Domain: target}, nil
		},
	}
	service := newDispatchService(provider)

	succeeded, failed := service.dispatch(context.Background(), []string{"b.com", "a.com"}, domain.SearchParams{})

	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
	if len(succeeded) != 2 {
		t.Fatalf("len(succeeded) = %d, want 2", len(succeeded))
	}
	if succeeded[0].Domain != "b.com" || succeeded[1].Domain != "a.com" {
		t.Errorf("order = [%v %v], want [b.com a.com]", succeeded[0].Domain, succeeded[1].Domain)
	}
}

func TestDispatch_OneFailureDoesNotAffectOthers(t *testing.T) {
	provider := &mockProvider{
		fetchFunc: func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			if target == "bad.com" {
				return nil, &coreerrors.ProviderError{Domain: target, StatusCode: 500, Message: "server error"}
			}
			return &domain.DomainResult{Domain: target}, nil
		},
	}
	service := newDispatchService(provider)

	succeeded, failed := service.dispatch(context.Background(), []string{"a.com", "bad.com", "c.com"}, domain.SearchParams{})

	if len(succeeded) != 2 {
		t.Fatalf("len(succeeded) = %d, want 2", len(succeeded))
	}
	if succeeded[0].Domain != "a.com" || succeeded[1].Domain != "c.com" {
		t.Errorf("succeeded order = %v, want [a.com c.com]", succeeded)
	}
	if len(failed) != 1 {
		t.Fatalf("len(failed) = %d, want 1", len(failed))
	}
	if failed[0].Domain != "bad.com" || failed[0].StatusCode != 500 {
		t.Errorf("failure = %+v, want bad.com with status 500", failed[0])
	}
	if provider.callCount() != 3 {
		t.Errorf("provider called %d times, want 3", provider.callCount())
	}
}

func TestDispatch_AllCallsStartConcurrently(t *testing.T) {
	// A full-size batch (the request maximum) where each call blocks until
	// every other call has started. If the fan-out serialized any call
	// behind another's completion, this would deadlock and time out.
	const n = 20
	started := make(chan struct{}, n)
	release := make(chan struct{})

	provider := &mockProvider{
		fetchFunc: func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			started <- struct{}{}
			<-release
			return &domain.DomainResult{Domain: target}, nil
		},
	}
	service := newDispatchService(provider)

	domains := make([]string, n)
	for i := range domains {
		domains[i] = fmt.Sprintf("domain%02d.com", i)
	}

	done := make(chan struct{})
	go func() {
		service.dispatch(context.Background(), domains, domain.SearchParams{})
		close(done)
	}()

	for i := 0; i < n; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d calls started; fan-out is serialized", i, n)
		}
	}
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not settle after calls completed")
	}
}

func TestDispatch_SingleDomainBehavesLikeGeneralCase(t *testing.T) {
	provider := &mockProvider{
		fetchFunc: func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			return &domain.DomainResult{Domain: target, Ads: []domain.Ad{{CreativeID: "x"}}}, nil
		},
	}
	service := newDispatchService(provider)

	succeeded, failed := service.dispatch(context.Background(), []string{"solo.com"}, domain.SearchParams{})

	if len(succeeded) != 1 || len(failed) != 0 {
		t.Errorf("succeeded/failed = %d/%d, want 1/0", len(succeeded), len(failed))
	}
}

func TestDispatch_CancelledContextCountsAsFailures(t *testing.T) {
	provider := &mockProvider{}
	service := newDispatchService(provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	succeeded, failed := service.dispatch(ctx, []string{"a.com", "b.com"}, domain.SearchParams{})

	if len(succeeded) != 0 {
		t.Errorf("len(succeeded) = %d, want 0 after cancellation", len(succeeded))
	}
	if len(failed) != 2 {
		t.Errorf("len(failed) = %d, want 2", len(failed))
	}
}

func TestDispatch_MidFlightCancellationDiscardsCompletedResults(t *testing.T) {
	// fast.com settles before the cancellation fires; a cancelled batch
	// must still yield no successes rather than a partial result.
	ctx, cancel := context.WithCancel(context.Background())
	fastDone := make(chan struct{})

	provider := &mockProvider{
		fetchFunc: func(callCtx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			if target == "fast.com" {
				defer close(fastDone)
				return &domain.DomainResult{Domain: target}, nil
			}
			<-fastDone
			cancel()
			<-callCtx.Done()
			return nil, callCtx.Err()
		},
	}
	service := newDispatchService(provider)

	succeeded, failed := service.dispatch(ctx, []string{"fast.com", "slow.com"}, domain.SearchParams{})

	if len(succeeded) != 0 {
		t.Errorf("len(succeeded) = %d, want 0 for a cancelled batch", len(succeeded))
	}
	if len(failed) != 2 {
		t.Fatalf("len(failed) = %d, want 2", len(failed))
	}
	if failed[0].Domain != "fast.com" || failed[1].Domain != "slow.com" {
		t.Errorf("failure order = [%v %v], want [fast.com slow.com]", failed[0].Domain, failed[1].Domain)
	}
}

func TestDispatch_FailuresKeepSubmissionOrder(t *testing.T) {
	provider := &mockProvider{
		fetchFunc: func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
			if target == "y.com" {
				time.Sleep(30 * time.Millisecond)
			}
			return nil, &coreerrors.ProviderError{Domain: target, StatusCode: 404, Message: "not found"}
		},
	}
	service := newDispatchService(provider)

	_, failed := service.dispatch(context.Background(), []string{"y.com", "z.com"}, domain.SearchParams{})

	if len(failed) != 2 {
		t.Fatalf("len(failed) = %d, want 2", len(failed))
	}
	if failed[0].Domain != "y.com" || failed[1].Domain != "z.com" {
		t.Errorf("failure order = [%v %v], want [y.com z.com]", failed[0].Domain, failed[1].Domain)
	}
}
