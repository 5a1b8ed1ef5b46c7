package catalog

import (
	"net/url"
	"strings"
)

// HasScheme reports whether raw is a well-formed URL with an explicit http or
// https scheme. Catalog rows without one never enter the store.
func HasScheme(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DomainFromURL extracts the lower-cased host portion of a URL, or "" when the
// URL cannot be parsed.
func DomainFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// CountryFromDomain classifies a source domain by its final label, upper-cased
// ("example.by" -> "BY"). Returns "" for empty or label-less domains.
func CountryFromDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToUpper(parts[len(parts)-1])
}
