// ABOUTME: Utility functions for canonicalizing user-entered domain strings
// ABOUTME: Strips scheme, www prefix and trailing slash before domains enter the pipeline

package domainutil

import "strings"

// Normalize canonicalizes a user-entered domain string: lowercases, trims
// whitespace, strips a leading http:// or https://, one trailing slash and
// a leading www. prefix. Blank input yields an empty string; callers must
// discard empty results.
func Normalize(raw string) string {
	domain := strings.ToLower(strings.TrimSpace(raw))

	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	domain = strings.TrimPrefix(domain, "www.")

	return domain
}

// NormalizeAll normalizes every entry, drops blanks and removes duplicates
// while preserving first-occurrence order.
func NormalizeAll(raws []string) []string {
	seen := make(map[string]bool, len(raws))
	domains := make([]string, 0, len(raws))

	for _, raw := range raws {
		domain := Normalize(raw)
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}

	return domains
}
