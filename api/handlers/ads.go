// ABOUTME: Ad search handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for multi-domain ad searches and filter catalogs

package handlers

import (
	"context"
	"net/http"

	"keyword-analysis-api/api/dto/mappers"
	"keyword-analysis-api/api/dto/requests"
	"keyword-analysis-api/api/dto/responses"
	"keyword-analysis-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// AdsService interface defines the methods needed from the search service
type AdsService interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.CombinedResult, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	Languages() []domain.Language
}

// AdsHandler handles ad-search-related HTTP requests
type AdsHandler struct {
	service AdsService
}

// NewAdsHandler creates a new ads handler
func NewAdsHandler(service AdsService) *AdsHandler {
	return &AdsHandler{service: service}
}

// RegisterRoutes registers all ad-search-related routes
func (h *AdsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchAds",
		Method:      http.MethodPost,
		Path:        "/ads/search",
		Summary:     "Search ads across competitor domains",
		Description: "Fetches ads for each requested domain concurrently and merges the results, including keyphrase clustering when available",
		Tags:        []string{"Ads"},
	}, h.SearchAds)

	huma.Register(api, huma.Operation{
		OperationID: "listAdLocations",
		Method:      http.MethodGet,
		Path:        "/ads/locations",
		Summary:     "List available search locations",
		Description: "Returns the countries available for filtering ad searches",
		Tags:        []string{"Ads"},
	}, h.ListLocations)

	huma.Register(api, huma.Operation{
		OperationID: "listAdLanguages",
		Method:      http.MethodGet,
		Path:        "/ads/languages",
		Summary:     "List supported languages",
		Description: "Returns the languages supported for filtering ad searches",
		Tags:        []string{"Ads"},
	}, h.ListLanguages)
}

// SearchAdsInput defines the input for the SearchAds operation
type SearchAdsInput struct {
	Body requests.SearchAdsRequest `json:"body"`
}

// SearchAdsOutput defines the output for the SearchAds operation
type SearchAdsOutput struct {
	Body responses.SearchAdsResponse
}

// SearchAds handles the POST /ads/search endpoint
func (h *AdsHandler) SearchAds(ctx context.Context, input *SearchAdsInput) (*SearchAdsOutput, error) {
	input.Body.ApplyDefaults()

	result, err := h.service.Search(ctx, domain.SearchRequest{
		Domains:      input.Body.Domains,
		Depth:        input.Body.Depth,
		LocationCode: input.Body.LocationCode,
		Platform:     input.Body.Platform,
		Language:     input.Body.Language,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	requested := len(result.Domains) + len(result.Failures)
	response := mappers.ToSearchAdsResponse(result, requested)

	return &SearchAdsOutput{Body: *response}, nil
}

// ListLocationsOutput defines the output for the ListLocations operation
type ListLocationsOutput struct {
	Body responses.LocationsResponse
}

// ListLocations handles the GET /ads/locations endpoint
func (h *AdsHandler) ListLocations(ctx context.Context, _ *struct{}) (*ListLocationsOutput, error) {
	locations, err := h.service.Locations(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListLocationsOutput{Body: *mappers.ToLocationsResponse(locations)}, nil
}

// ListLanguagesOutput defines the output for the ListLanguages operation
type ListLanguagesOutput struct {
	Body responses.LanguagesResponse
}

// ListLanguages handles the GET /ads/languages endpoint
func (h *AdsHandler) ListLanguages(_ context.Context, _ *struct{}) (*ListLanguagesOutput, error) {
	return &ListLanguagesOutput{Body: *mappers.ToLanguagesResponse(h.service.Languages())}, nil
}
