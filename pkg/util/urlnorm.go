package util

import (
	"net/url"
	"strings"
)

// NormalizeURL coerces a user-supplied link to an https URL. Empty input
// stays empty; input that does not parse is returned unchanged rather than
// rejected, matching the lenient handling of profile links.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	candidate := trimmed
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Host == "" {
		return trimmed
	}
	parsed.Scheme = "https"
	return parsed.String()
}
