// ABOUTME: Search request and result models for multi-domain ad searches
// ABOUTME: Defines the shapes flowing between the facade, orchestrator and combiner

package domain

// SearchRequest is a single user request covering one or more competitor
// domains. Domains are expected to be normalized and deduplicated before
// dispatch; the facade enforces this.
type SearchRequest struct {
	// Domains are the normalized domains to search, in submission order
	Domains []string

	// Depth is the per-domain ads limit (provider maximum is 120)
	Depth int

	// LocationCode selects the geographic market (2840 = United States)
	LocationCode int

	// Language optionally filters ads by language tag; empty means no filter
	Language string

	// Platform selects the advertising surface to search; empty means the
	// provider's default (google_search)
	Platform string
}

// SearchParams are the per-call provider parameters shared by every domain
// of one request.
type SearchParams struct {
	Depth        int
	LocationCode int
	Language     string
	Platform     string
}

// Params returns the provider parameters carried by the request.
func (r SearchRequest) Params() SearchParams {
	return SearchParams{
		Depth:        r.Depth,
		LocationCode: r.LocationCode,
		Language:     r.Language,
		Platform:     r.Platform,
	}
}

// DomainResult is the outcome of one successful provider call. It is
// immutable after creation and owned by the orchestrator until the combiner
// consumes it.
type DomainResult struct {
	// Domain is the normalized domain that was searched
	Domain string

	// Ads are the creatives found for the domain, in provider order
	Ads []Ad

	// Clustering is the per-domain cluster set, or nil when the provider
	// did not compute clustering for this domain
	Clustering *ClusterSet
}

// DomainFailure records one domain whose provider call failed. It is
// auxiliary metadata: a partial-failure search still succeeds.
type DomainFailure struct {
	Domain string

	// StatusCode is the provider's HTTP status, 0 for transport failures
	StatusCode int

	Message string
}

// CombinedResult is the merged view over every domain that succeeded.
type CombinedResult struct {
	// Domains are the domains that returned data, in submission order
	Domains []string

	// AdsCount always equals len(Ads)
	AdsCount int

	// Ads is the concatenation of each domain's ads in submission order
	Ads []Ad

	// Clustering is the merged cluster set, or nil when no succeeded domain
	// had clustering data. Nil means "not attempted", which is distinct
	// from an empty set with zero phrases.
	Clustering *ClusterSet

	// Failures lists the domains that failed, in submission order. The
	// presentation layer decides whether to surface them.
	Failures []DomainFailure
}
