// ABOUTME: Client for the external ad-metadata and keyphrase-clustering provider
// ABOUTME: Issues one search call per domain and maps failures into typed provider errors

package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"keyword-analysis-api/core/domain"
	coreerrors "keyword-analysis-api/core/errors"
	"keyword-analysis-api/core/interfaces"
)

const (
	analyzeEndpoint   = "/ads/domain/analyze"
	locationsEndpoint = "/ads/locations"

	// maxDepth is the provider's hard per-domain result limit
	maxDepth     = 120
	defaultDepth = 100

	defaultPlatform = "google_search"

	locationsCacheKey = "provider:locations"
	locationsCacheTTL = 24 * time.Hour
)

// Config holds the provider endpoint and credentials.
type Config struct {
	BaseURL  string
	Login    string
	Password string
}

// Client talks to the external provider. It implements
// interfaces.AdsProvider and performs exactly one network call per
// invocation; retry policy lives in the transport layer.
type Client struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewClient creates a new provider client.
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	return &Client{
		deps: deps,
		cfg:  cfg,
	}
}

// authHeader builds the Basic authorization header from the configured
// credentials, or returns an empty string when none are set.
func (c *Client) authHeader() string {
	if c.cfg.Login == "" && c.cfg.Password == "" {
		return ""
	}
	credentials := c.cfg.Login + ":" + c.cfg.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// FetchDomainAds retrieves ads and optional per-domain clustering for a
// single normalized domain.
func (c *Client) FetchDomainAds(ctx context.Context, target string, params domain.SearchParams) (*domain.DomainResult, error) {
	depth := params.Depth
	if depth <= 0 {
		depth = defaultDepth
	}
	if depth > maxDepth {
		depth = maxDepth
	}

	platform := params.Platform
	if platform == "" {
		platform = defaultPlatform
	}

	reqBody := analyzeRequest{
		Target:       target,
		LocationCode: params.LocationCode,
		Depth:        depth,
		Platform:     platform,
		Language:     params.Language,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Domain:  target,
			Message: fmt.Sprintf("failed to encode request: %v", err),
		}
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if auth := c.authHeader(); auth != "" {
		headers["Authorization"] = auth
	}

	resp, err := c.deps.HTTPClient.Do(ctx, http.MethodPost, c.cfg.BaseURL+analyzeEndpoint, bytes.NewReader(payload), headers)
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Domain:  target,
			Message: err.Error(),
		}
	}
	defer resp.Body().Close()

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Domain:  target,
			Message: fmt.Sprintf("failed to read response: %v", err),
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ProviderError{
			Domain:     target,
			StatusCode: resp.StatusCode(),
			Message:    errorDetail(bodyBytes, resp.StatusCode()),
		}
	}

	var wire analyzeResponse
	if err := json.Unmarshal(bodyBytes, &wire); err != nil {
		return nil, &coreerrors.ProviderError{
			Domain:  target,
			Message: fmt.Sprintf("failed to decode provider response: %v", err),
		}
	}

	return wire.toDomain(target), nil
}

// Locations returns the countries available for ad filtering. The list is
// effectively static upstream, so results are cached.
func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	if c.deps.Cache != nil {
		if data, err := c.deps.Cache.Get(ctx, locationsCacheKey); err == nil && data != nil {
			var locations []domain.Location
			if err := json.Unmarshal(data, &locations); err == nil {
				return locations, nil
			}
		}
	}

	headers := map[string]string{}
	if auth := c.authHeader(); auth != "" {
		headers["Authorization"] = auth
	}

	resp, err := c.deps.HTTPClient.Do(ctx, http.MethodGet, c.cfg.BaseURL+locationsEndpoint, nil, headers)
	if err != nil {
		return nil, &coreerrors.ProviderError{Message: err.Error()}
	}
	defer resp.Body().Close()

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ProviderError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ProviderError{
			StatusCode: resp.StatusCode(),
			Message:    errorDetail(bodyBytes, resp.StatusCode()),
		}
	}

	var wire locationsResponse
	if err := json.Unmarshal(bodyBytes, &wire); err != nil {
		return nil, &coreerrors.ProviderError{
			Message: fmt.Sprintf("failed to decode locations response: %v", err),
		}
	}

	locations := make([]domain.Location, 0, len(wire.Locations))
	for _, loc := range wire.Locations {
		if loc.LocationCode == 0 || loc.LocationName == "" {
			continue
		}
		locations = append(locations, domain.Location{
			Code:       loc.LocationCode,
			Name:       loc.LocationName,
			CountryISO: loc.CountryISOCode,
		})
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Name < locations[j].Name
	})

	if c.deps.Cache != nil && len(locations) > 0 {
		if data, err := json.Marshal(locations); err == nil {
			_ = c.deps.Cache.Set(ctx, locationsCacheKey, data, locationsCacheTTL)
		}
	}

	return locations, nil
}

// errorDetail extracts the provider's human-readable detail message from an
// error body, falling back to a generic message keyed by status code.
func errorDetail(body []byte, statusCode int) string {
	var wire struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Detail != "" {
		return wire.Detail
	}

	if statusCode == 0 {
		return "provider request failed"
	}
	return fmt.Sprintf("provider returned status %d", statusCode)
}
