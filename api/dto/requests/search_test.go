package requests

import "testing"

func TestSearchAdsRequest_ApplyDefaults(t *testing.T) {
	req := &SearchAdsRequest{
		Domains: []string{"nike.com"},
	}

	req.ApplyDefaults()

	if req.Depth != 100 {
		t.Errorf("Expected default depth 100, got %d", req.Depth)
	}
	if req.LocationCode != 2840 {
		t.Errorf("Expected default location code 2840, got %d", req.LocationCode)
	}
	if req.Platform != "google_search" {
		t.Errorf("Expected default platform google_search, got %s", req.Platform)
	}
}

func TestSearchAdsRequest_ApplyDefaults_PreservesExplicitValues(t *testing.T) {
	req := &SearchAdsRequest{
		Domains:      []string{"nike.com"},
		Depth:        50,
		LocationCode: 2826,
		Platform:     "youtube",
		Language:     "en",
	}

	req.ApplyDefaults()

	if req.Depth != 50 {
		t.Errorf("Expected depth 50 to be preserved, got %d", req.Depth)
	}
	if req.LocationCode != 2826 {
		t.Errorf("Expected location code 2826 to be preserved, got %d", req.LocationCode)
	}
	if req.Platform != "youtube" {
		t.Errorf("Expected platform youtube to be preserved, got %s", req.Platform)
	}
	if req.Language != "en" {
		t.Errorf("Expected language en to be preserved, got %s", req.Language)
	}
}
