// ABOUTME: Static registry of languages supported for ad filtering
// ABOUTME: Served directly by the API without a provider round trip

package domain

import "sort"

// Language is a language available for filtering ad searches.
type Language struct {
	// Code is the ISO 639-1 language code ("en", "es")
	Code string

	// Name is the English display name
	Name string
}

var supportedLanguages = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"nl":    "Dutch",
	"pl":    "Polish",
	"ru":    "Russian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh-cn": "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
	"ar":    "Arabic",
	"tr":    "Turkish",
	"sv":    "Swedish",
	"no":    "Norwegian",
	"da":    "Danish",
	"fi":    "Finnish",
	"cs":    "Czech",
	"uk":    "Ukrainian",
	"el":    "Greek",
	"he":    "Hebrew",
	"th":    "Thai",
	"vi":    "Vietnamese",
	"id":    "Indonesian",
	"ms":    "Malay",
	"hi":    "Hindi",
	"bn":    "Bengali",
	"ro":    "Romanian",
	"hu":    "Hungarian",
	"sk":    "Slovak",
	"bg":    "Bulgarian",
	"hr":    "Croatian",
	"sr":    "Serbian",
	"sl":    "Slovenian",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"et":    "Estonian",
}

// SupportedLanguages returns every supported language sorted by display name.
func SupportedLanguages() []Language {
	languages := make([]Language, 0, len(supportedLanguages))
	for code, name := range supportedLanguages {
		languages = append(languages, Language{Code: code, Name: name})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	return languages
}

// IsSupportedLanguage reports whether code is a known language code.
func IsSupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}
