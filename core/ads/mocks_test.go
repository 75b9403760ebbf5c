package ads

import (
	"context"
	"sync"

	"keyword-analysis-api/core/domain"
)

// mockProvider is a mock implementation of the AdsProvider interface.
// Calls are recorded so tests can assert how the fan-out behaved.
type mockProvider struct {
	fetchFunc     func(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error)
	locationsFunc func(ctx context.Context) ([]domain.Location, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockProvider) FetchDomainAds(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, target)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, target, params)
	}
	return &domain.DomainResult{Domain: target}, nil
}

func (m *mockProvider) Locations(ctx context.Context) ([]domain.Location, error) {
	if m.locationsFunc != nil {
		return m.locationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockLogger records log calls for assertions
type mockLogger struct {
	mu       sync.Mutex
	warnMsgs []string
	infoMsgs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
