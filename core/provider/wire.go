// ABOUTME: Wire types for the provider's JSON protocol
// ABOUTME: Decodes snake_case payloads into domain models with explicit optionality

package provider

import "keyword-analysis-api/core/domain"

// analyzeRequest is the per-domain search request body.
type analyzeRequest struct {
	Target       string `json:"target"`
	LocationCode int    `json:"location_code"`
	Depth        int    `json:"depth"`
	Platform     string `json:"platform"`
	Language     string `json:"language,omitempty"`
}

// analyzeResponse is the provider's per-domain search response. Clustering
// is a pointer so that "provider did not cluster" decodes as nil rather
// than an empty set.
type analyzeResponse struct {
	Domain     string          `json:"domain"`
	AdsCount   int             `json:"ads_count"`
	Ads        []wireAd        `json:"ads"`
	Clustering *wireClusterSet `json:"clustering"`
}

type wireAd struct {
	Type         string            `json:"type"`
	AdvertiserID string            `json:"advertiser_id"`
	CreativeID   string            `json:"creative_id"`
	Title        string            `json:"title"`
	URL          string            `json:"url"`
	Verified     bool              `json:"verified"`
	Format       string            `json:"format"`
	FirstShown   string            `json:"first_shown"`
	LastShown    string            `json:"last_shown"`
	PreviewImage *wirePreviewImage `json:"preview_image"`
	TextContent  *wireAdText       `json:"text_content"`
}

type wirePreviewImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type wireAdText struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	RawText     string `json:"raw_text"`
	Error       string `json:"error"`
}

type wireClusterSet struct {
	Clusters     []wireCluster    `json:"clusters"`
	Unclustered  []wirePhraseInfo `json:"unclustered"`
	TotalPhrases int              `json:"total_phrases"`
	Error        string           `json:"error"`
}

type wireCluster struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Size    int              `json:"size"`
	Phrases []wirePhraseInfo `json:"phrases"`
}

type wirePhraseInfo struct {
	Phrase     string `json:"phrase"`
	AdTitle    string `json:"ad_title"`
	AdURL      string `json:"ad_url"`
	CreativeID string `json:"creative_id"`
}

type locationsResponse struct {
	Locations []wireLocation `json:"locations"`
}

type wireLocation struct {
	LocationCode   int    `json:"location_code"`
	LocationName   string `json:"location_name"`
	CountryISOCode string `json:"country_iso_code"`
}

// toDomain converts a decoded response into a DomainResult. The provider's
// domain field wins when present; the requested target is the fallback.
func (r *analyzeResponse) toDomain(target string) *domain.DomainResult {
	resultDomain := r.Domain
	if resultDomain == "" {
		resultDomain = target
	}

	ads := make([]domain.Ad, 0, len(r.Ads))
	for _, a := range r.Ads {
		ad := domain.Ad{
			CreativeID:   a.CreativeID,
			AdvertiserID: a.AdvertiserID,
			Title:        a.Title,
			URL:          a.URL,
			Format:       a.Format,
			Verified:     a.Verified,
			FirstShown:   a.FirstShown,
			LastShown:    a.LastShown,
		}
		if a.PreviewImage != nil {
			ad.PreviewImage = &domain.PreviewImage{
				URL:    a.PreviewImage.URL,
				Width:  a.PreviewImage.Width,
				Height: a.PreviewImage.Height,
			}
		}
		if a.TextContent != nil {
			ad.Text = &domain.AdText{
				Headline:    a.TextContent.Headline,
				Description: a.TextContent.Description,
				RawText:     a.TextContent.RawText,
				Error:       a.TextContent.Error,
			}
		}
		ads = append(ads, ad)
	}

	return &domain.DomainResult{
		Domain:     resultDomain,
		Ads:        ads,
		Clustering: r.Clustering.toDomain(),
	}
}

func (s *wireClusterSet) toDomain() *domain.ClusterSet {
	if s == nil {
		return nil
	}

	clusters := make([]domain.Cluster, 0, len(s.Clusters))
	for _, c := range s.Clusters {
		cluster := domain.Cluster{
			ID:      c.ID,
			Name:    c.Name,
			Phrases: toPhraseInfos(c.Phrases),
		}
		cluster.Size = len(cluster.Phrases)
		clusters = append(clusters, cluster)
	}

	return &domain.ClusterSet{
		Clusters:     clusters,
		Unclustered:  toPhraseInfos(s.Unclustered),
		TotalPhrases: s.TotalPhrases,
		Error:        s.Error,
	}
}

func toPhraseInfos(wire []wirePhraseInfo) []domain.PhraseInfo {
	phrases := make([]domain.PhraseInfo, 0, len(wire))
	for _, p := range wire {
		phrases = append(phrases, domain.PhraseInfo{
			Phrase:     p.Phrase,
			AdTitle:    p.AdTitle,
			AdURL:      p.AdURL,
			CreativeID: p.CreativeID,
		})
	}
	return phrases
}
