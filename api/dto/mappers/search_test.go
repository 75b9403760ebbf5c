package mappers

import (
	"testing"

	"keyword-analysis-api/core/domain"
)

func TestToSearchAdsResponse_NilResult(t *testing.T) {
	if ToSearchAdsResponse(nil, 0) != nil {
		t.Error("Expected nil response for nil result")
	}
}

func TestToSearchAdsResponse_MapsCoreFields(t *testing.T) {
	result := &domain.CombinedResult{
		Domains:  []string{"nike.com", "adidas.com"},
		AdsCount: 2,
		Ads: []domain.Ad{
			{CreativeID: "cr-1", Title: "Nike", Verified: true},
			{CreativeID: "cr-2", Title: "Adidas"},
		},
	}

	response := ToSearchAdsResponse(result, 3)

	if response.RequestedCount != 3 {
		t.Errorf("Expected requested count 3, got %d", response.RequestedCount)
	}
	if response.SucceededCount != 2 {
		t.Errorf("Expected succeeded count 2, got %d", response.SucceededCount)
	}
	if response.AdsCount != 2 {
		t.Errorf("Expected ads count 2, got %d", response.AdsCount)
	}
	if len(response.Ads) != 2 {
		t.Fatalf("Expected 2 ads, got %d", len(response.Ads))
	}
	if response.Ads[0].CreativeID != "cr-1" {
		t.Errorf("Expected first ad cr-1, got %s", response.Ads[0].CreativeID)
	}
	if !response.Ads[0].Verified {
		t.Error("Expected first ad to be verified")
	}
	if response.Clustering != nil {
		t.Error("Expected nil clustering when result has none")
	}
}

func TestToSearchAdsResponse_MapsPreviewImageAndText(t *testing.T) {
	result := &domain.CombinedResult{
		Domains:  []string{"nike.com"},
		AdsCount: 1,
		Ads: []domain.Ad{
			{
				CreativeID:   "cr-1",
				PreviewImage: &domain.PreviewImage{URL: "https://cdn.example.com/a.png", Width: 300, Height: 250},
				Text:         &domain.AdText{Headline: "Just Do It", RawText: "Just Do It. New arrivals."},
			},
		},
	}

	response := ToSearchAdsResponse(result, 1)

	ad := response.Ads[0]
	if ad.PreviewImage == nil || ad.PreviewImage.Width != 300 {
		t.Errorf("Expected preview image with width 300, got %+v", ad.PreviewImage)
	}
	if ad.Text == nil || ad.Text.Headline != "Just Do It" {
		t.Errorf("Expected ad text headline, got %+v", ad.Text)
	}
}

func TestToSearchAdsResponse_MapsClustering(t *testing.T) {
	result := &domain.CombinedResult{
		Domains:  []string{"nike.com"},
		AdsCount: 1,
		Ads:      []domain.Ad{{CreativeID: "cr-1"}},
		Clustering: &domain.ClusterSet{
			Clusters: []domain.Cluster{
				{
					ID:   0,
					Name: "running shoes",
					Size: 2,
					Phrases: []domain.PhraseInfo{
						{Phrase: "running shoes", CreativeID: "cr-1"},
						{Phrase: "trail runners", CreativeID: "cr-1"},
					},
				},
			},
			Unclustered:  []domain.PhraseInfo{{Phrase: "miscellaneous"}},
			TotalPhrases: 3,
		},
	}

	response := ToSearchAdsResponse(result, 1)

	if response.Clustering == nil {
		t.Fatal("Expected clustering in response")
	}
	if len(response.Clustering.Clusters) != 1 {
		t.Fatalf("Expected 1 cluster, got %d", len(response.Clustering.Clusters))
	}
	cluster := response.Clustering.Clusters[0]
	if cluster.Name != "running shoes" || cluster.Size != 2 {
		t.Errorf("Unexpected cluster mapping: %+v", cluster)
	}
	if len(cluster.Phrases) != 2 {
		t.Errorf("Expected 2 phrases, got %d", len(cluster.Phrases))
	}
	if len(response.Clustering.Unclustered) != 1 {
		t.Errorf("Expected 1 unclustered phrase, got %d", len(response.Clustering.Unclustered))
	}
	if response.Clustering.TotalPhrases != 3 {
		t.Errorf("Expected total phrases 3, got %d", response.Clustering.TotalPhrases)
	}
}

func TestToSearchAdsResponse_MapsFailures(t *testing.T) {
	result := &domain.CombinedResult{
		Domains:  []string{"nike.com"},
		AdsCount: 0,
		Failures: []domain.DomainFailure{
			{Domain: "adidas.com", StatusCode: 502, Message: "bad gateway"},
			{Domain: "puma.com", StatusCode: 0, Message: "connection refused"},
		},
	}

	response := ToSearchAdsResponse(result, 3)

	if len(response.Failures) != 2 {
		t.Fatalf("Expected 2 failures, got %d", len(response.Failures))
	}
	if response.Failures[0].Domain != "adidas.com" || response.Failures[0].StatusCode != 502 {
		t.Errorf("Unexpected first failure: %+v", response.Failures[0])
	}
	if response.Failures[1].StatusCode != 0 {
		t.Errorf("Expected transport failure status 0, got %d", response.Failures[1].StatusCode)
	}
}

func TestToLocationsResponse(t *testing.T) {
	locations := []domain.Location{
		{Code: 2826, Name: "United Kingdom", CountryISO: "GB"},
		{Code: 2840, Name: "United States", CountryISO: "US"},
	}

	response := ToLocationsResponse(locations)

	if response.Count != 2 {
		t.Errorf("Expected count 2, got %d", response.Count)
	}
	if response.Locations[0].Name != "United Kingdom" {
		t.Errorf("Expected United Kingdom first, got %s", response.Locations[0].Name)
	}
}

func TestToLanguagesResponse(t *testing.T) {
	languages := []domain.Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish"},
	}

	response := ToLanguagesResponse(languages)

	if response.Count != 2 {
		t.Errorf("Expected count 2, got %d", response.Count)
	}
	if response.Languages[1].Code != "es" {
		t.Errorf("Expected es second, got %s", response.Languages[1].Code)
	}
}
