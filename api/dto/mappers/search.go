// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"keyword-analysis-api/api/dto/responses"
	"keyword-analysis-api/core/domain"
)

// ToSearchAdsResponse converts a CombinedResult to a SearchAdsResponse DTO.
// requestedCount is the number of domains dispatched after normalization.
func ToSearchAdsResponse(result *domain.CombinedResult, requestedCount int) *responses.SearchAdsResponse {
	if result == nil {
		return nil
	}

	response := &responses.SearchAdsResponse{
		Domains:        result.Domains,
		RequestedCount: requestedCount,
		SucceededCount: len(result.Domains),
		AdsCount:       result.AdsCount,
		Ads:            make([]responses.AdResponse, 0, len(result.Ads)),
		Clustering:     toClusterSetResponse(result.Clustering),
	}

	for i := range result.Ads {
		response.Ads = append(response.Ads, toAdResponse(&result.Ads[i]))
	}

	for _, failure := range result.Failures {
		response.Failures = append(response.Failures, responses.DomainFailureResponse{
			Domain:     failure.Domain,
			StatusCode: failure.StatusCode,
			Error:      failure.Message,
		})
	}

	return response
}

func toAdResponse(ad *domain.Ad) responses.AdResponse {
	response := responses.AdResponse{
		CreativeID:   ad.CreativeID,
		AdvertiserID: ad.AdvertiserID,
		Title:        ad.Title,
		URL:          ad.URL,
		Format:       ad.Format,
		Verified:     ad.Verified,
		FirstShown:   ad.FirstShown,
		LastShown:    ad.LastShown,
	}

	if ad.PreviewImage != nil {
		response.PreviewImage = &responses.PreviewImageResponse{
			URL:    ad.PreviewImage.URL,
			Width:  ad.PreviewImage.Width,
			Height: ad.PreviewImage.Height,
		}
	}

	if ad.Text != nil {
		response.Text = &responses.AdTextResponse{
			Headline:    ad.Text.Headline,
			Description: ad.Text.Description,
			RawText:     ad.Text.RawText,
			Error:       ad.Text.Error,
		}
	}

	return response
}

func toClusterSetResponse(set *domain.ClusterSet) *responses.ClusterSetResponse {
	if set == nil {
		return nil
	}

	response := &responses.ClusterSetResponse{
		Clusters:     make([]responses.ClusterResponse, 0, len(set.Clusters)),
		TotalPhrases: set.TotalPhrases,
		Error:        set.Error,
	}

	for _, cluster := range set.Clusters {
		response.Clusters = append(response.Clusters, responses.ClusterResponse{
			ID:      cluster.ID,
			Name:    cluster.Name,
			Size:    cluster.Size,
			Phrases: toPhraseInfoResponses(cluster.Phrases),
		})
	}

	response.Unclustered = toPhraseInfoResponses(set.Unclustered)

	return response
}

func toPhraseInfoResponses(phrases []domain.PhraseInfo) []responses.PhraseInfoResponse {
	if len(phrases) == 0 {
		return nil
	}

	out := make([]responses.PhraseInfoResponse, 0, len(phrases))
	for _, phrase := range phrases {
		out = append(out, responses.PhraseInfoResponse{
			Phrase:     phrase.Phrase,
			AdTitle:    phrase.AdTitle,
			AdURL:      phrase.AdURL,
			CreativeID: phrase.CreativeID,
		})
	}
	return out
}

// ToLocationsResponse converts domain locations to a LocationsResponse DTO
func ToLocationsResponse(locations []domain.Location) *responses.LocationsResponse {
	response := &responses.LocationsResponse{
		Locations: make([]responses.LocationResponse, 0, len(locations)),
		Count:     len(locations),
	}

	for _, location := range locations {
		response.Locations = append(response.Locations, responses.LocationResponse{
			Code:       location.Code,
			Name:       location.Name,
			CountryISO: location.CountryISO,
		})
	}

	return response
}

// ToLanguagesResponse converts domain languages to a LanguagesResponse DTO
func ToLanguagesResponse(languages []domain.Language) *responses.LanguagesResponse {
	response := &responses.LanguagesResponse{
		Languages: make([]responses.LanguageResponse, 0, len(languages)),
		Count:     len(languages),
	}

	for _, language := range languages {
		response.Languages = append(response.Languages, responses.LanguageResponse{
			Code: language.Code,
			Name: language.Name,
		})
	}

	return response
}
