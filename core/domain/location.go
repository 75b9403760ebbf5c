package domain

// Location is a country available for ad filtering, as reported by the
// provider's locations endpoint.
type Location struct {
	// Code is the provider's numeric location code
	Code int

	// Name is the human-readable location name
	Name string

	// CountryISO is the ISO country code ("US", "GB")
	CountryISO string
}
