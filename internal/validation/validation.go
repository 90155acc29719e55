package validation

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest normalized query, in characters, that is
// matched against the catalog.
const MinQueryLength = 2

// MaxKeywordLength bounds keywords recorded into history.
const MaxKeywordLength = 100

// NormalizeQuery trims surrounding whitespace and lowercases a query so
// lookups are case-insensitive.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// IsSearchable reports whether a normalized query is long enough to match.
func IsSearchable(normalized string) bool {
	return utf8.RuneCountInString(normalized) >= MinQueryLength
}

// ValidateKeyword checks a normalized keyword before it is recorded into history.
func ValidateKeyword(keyword string) (bool, string) {
	if keyword == "" {
		return false, "keyword is required"
	}
	if !IsSearchable(keyword) {
		return false, "keyword must be at least 2 characters"
	}
	if utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false, "keyword must be at most 100 characters"
	}
	return true, ""
}

// ParseThreshold parses the recurring threshold query parameter.
// An empty value yields fallback. Thresholds below 1 are rejected.
func ParseThreshold(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
