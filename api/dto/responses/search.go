// ABOUTME: Response DTOs for ad search API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// SearchAdsResponse represents the merged result of a multi-domain ad search
type SearchAdsResponse struct {
	Domains        []string                `json:"domains" doc:"Domains that returned data, in request order"`
	RequestedCount int                     `json:"requested_count" doc:"Number of domains requested after normalization"`
	SucceededCount int                     `json:"succeeded_count" doc:"Number of domains that returned data"`
	AdsCount       int                     `json:"ads_count" doc:"Total number of ads across all domains"`
	Ads            []AdResponse            `json:"ads" doc:"Ads from all successful domains, in request order"`
	Clustering     *ClusterSetResponse     `json:"clustering,omitempty" doc:"Merged keyphrase clustering, when available"`
	Failures       []DomainFailureResponse `json:"failures,omitempty" doc:"Domains whose search failed"`
}

// AdResponse represents a single advertising creative in API responses
type AdResponse struct {
	CreativeID   string                `json:"creative_id" doc:"Provider-assigned creative identifier"`
	AdvertiserID string                `json:"advertiser_id,omitempty" doc:"Advertiser account identifier"`
	Title        string                `json:"title,omitempty" doc:"Advertiser name or ad headline"`
	URL          string                `json:"url,omitempty" doc:"Link to the ad in the provider's transparency view"`
	Format       string                `json:"format,omitempty" doc:"Creative format (text, image, video)"`
	Verified     bool                  `json:"verified" doc:"Whether the advertiser is verified"`
	FirstShown   string                `json:"first_shown,omitempty" doc:"First known date the ad was shown"`
	LastShown    string                `json:"last_shown,omitempty" doc:"Last known date the ad was shown"`
	PreviewImage *PreviewImageResponse `json:"preview_image,omitempty" doc:"Creative preview image"`
	Text         *AdTextResponse       `json:"text,omitempty" doc:"Extracted text content of the creative"`
}

// PreviewImageResponse represents an ad's preview image
type PreviewImageResponse struct {
	URL    string `json:"url" doc:"Image URL"`
	Width  int    `json:"width,omitempty" doc:"Image width in pixels"`
	Height int    `json:"height,omitempty" doc:"Image height in pixels"`
}

// AdTextResponse represents extracted ad text content
type AdTextResponse struct {
	Headline    string `json:"headline,omitempty" doc:"Extracted headline"`
	Description string `json:"description,omitempty" doc:"Extracted description"`
	RawText     string `json:"raw_text,omitempty" doc:"Full extracted text"`
	Error       string `json:"error,omitempty" doc:"Extraction error, when extraction failed"`
}

// ClusterSetResponse represents a keyphrase clustering outcome
type ClusterSetResponse struct {
	Clusters     []ClusterResponse    `json:"clusters" doc:"Keyphrase clusters sorted by size descending"`
	Unclustered  []PhraseInfoResponse `json:"unclustered,omitempty" doc:"Phrases that did not fit any cluster"`
	TotalPhrases int                  `json:"total_phrases" doc:"Total number of phrases considered"`
	Error        string               `json:"error,omitempty" doc:"Set when ads were fetched but clustering failed"`
}

// ClusterResponse represents one keyphrase cluster
type ClusterResponse struct {
	ID      int                  `json:"id" doc:"Cluster id, dense from 0"`
	Name    string               `json:"name" doc:"Topic-level cluster label"`
	Size    int                  `json:"size" doc:"Number of member phrases"`
	Phrases []PhraseInfoResponse `json:"phrases" doc:"Member keyphrases"`
}

// PhraseInfoResponse represents a keyphrase with its source ad reference
type PhraseInfoResponse struct {
	Phrase     string `json:"phrase" doc:"Keyphrase text"`
	AdTitle    string `json:"ad_title,omitempty" doc:"Title of the source ad"`
	AdURL      string `json:"ad_url,omitempty" doc:"URL of the source ad"`
	CreativeID string `json:"creative_id,omitempty" doc:"Creative id of the source ad"`
}

// DomainFailureResponse represents one domain whose search failed
type DomainFailureResponse struct {
	Domain     string `json:"domain" doc:"Normalized domain that failed"`
	StatusCode int    `json:"status_code,omitempty" doc:"Provider HTTP status, 0 for transport failures"`
	Error      string `json:"error" doc:"Failure message"`
}

// LocationResponse represents a country available for ad filtering
type LocationResponse struct {
	Code       int    `json:"code" doc:"Numeric location code"`
	Name       string `json:"name" doc:"Location name"`
	CountryISO string `json:"country_iso,omitempty" doc:"ISO country code"`
}

// LocationsResponse represents the list of available locations
type LocationsResponse struct {
	Locations []LocationResponse `json:"locations" doc:"Available locations sorted by name"`
	Count     int                `json:"count" doc:"Number of locations"`
}

// LanguageResponse represents a supported language filter
type LanguageResponse struct {
	Code string `json:"code" doc:"ISO 639-1 language code"`
	Name string `json:"name" doc:"English display name"`
}

// LanguagesResponse represents the list of supported languages
type LanguagesResponse struct {
	Languages []LanguageResponse `json:"languages" doc:"Supported languages sorted by name"`
	Count     int                `json:"count" doc:"Number of languages"`
}
