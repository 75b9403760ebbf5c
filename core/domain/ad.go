// ABOUTME: Ad domain model represents a single advertising creative for a domain
// ABOUTME: The core treats ad content as opaque and only carries it through

package domain

// Ad represents a single advertising creative returned by the provider.
// The orchestration core never inspects or transforms ad content; it only
// concatenates ads across domains.
type Ad struct {
	// CreativeID is the provider-assigned identifier for the creative
	CreativeID string

	// AdvertiserID identifies the advertiser account
	AdvertiserID string

	// Title is the advertiser name or ad headline
	Title string

	// URL points at the ad in the provider's transparency view
	URL string

	// Format is the creative format ("text", "image", "video")
	Format string

	// Verified reports whether the advertiser is verified
	Verified bool

	// FirstShown and LastShown bound the ad's known activity window
	FirstShown string
	LastShown  string

	// PreviewImage is the creative's preview image, when the provider has one
	PreviewImage *PreviewImage

	// Text is the extracted text content of the creative, when the provider
	// computed it. Nil means extraction was not attempted for this ad.
	Text *AdText
}

// PreviewImage describes an ad creative's preview image.
type PreviewImage struct {
	URL    string
	Width  int
	Height int
}

// AdText holds text content extracted from an ad creative by the provider.
type AdText struct {
	Headline    string
	Description string
	RawText     string

	// Error is set when the provider attempted extraction but failed
	Error string
}
