// ABOUTME: Request DTOs for ad search API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// SearchAdsRequest represents the request body for a multi-domain ad search
type SearchAdsRequest struct {
	// Domains is the list of competitor domains to search
	Domains []string `json:"domains" minItems:"1" maxItems:"20" doc:"Competitor domains to search"`

	// Depth is the maximum number of ads fetched per domain
	Depth int `json:"depth,omitempty" minimum:"1" maximum:"120" default:"100" doc:"Maximum ads per domain"`

	// LocationCode selects the geographic market
	LocationCode int `json:"location_code,omitempty" minimum:"1" default:"2840" doc:"Numeric location code (2840 = United States)"`

	// Platform selects the advertising surface to search
	Platform string `json:"platform,omitempty" enum:"all,google_play,google_maps,google_search,google_shopping,youtube" default:"google_search" doc:"Advertising platform to search"`

	// Language optionally filters ads by language code
	Language string `json:"language,omitempty" doc:"ISO 639-1 language code filter"`
}

// ApplyDefaults sets default values for optional fields
func (r *SearchAdsRequest) ApplyDefaults() {
	if r.Depth == 0 {
		r.Depth = 100
	}
	if r.LocationCode == 0 {
		r.LocationCode = 2840
	}
	if r.Platform == "" {
		r.Platform = "google_search"
	}
}
