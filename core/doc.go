// Package core contains the business logic for the Keyword Analysis API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Ad, Cluster, SearchRequest, etc.)
// - ads: Multi-domain search orchestration and result merging
// - provider: Client for the external ads analysis provider
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "keyword-analysis-api/core/ads"
//	    "keyword-analysis-api/core/interfaces"
//	    "keyword-analysis-api/core/provider"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	client := provider.NewClient(deps, provider.Config{BaseURL: baseURL})
//	searchService := ads.NewService(deps, client)
//
//	// Search ads across domains
//	result, err := searchService.Search(ctx, domain.SearchRequest{
//	    Domains: []string{"nike.com", "adidas.com"},
//	})
package core
