// Package url normalizes user-typed addresses into loadable URLs.
package url

import (
	"net/url"
	"path/filepath"
	"strings"
)

var knownSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
	"about": true,
}

// HasKnownScheme reports whether input starts with a scheme tabshell loads.
func HasKnownScheme(input string) bool {
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	return knownSchemes[strings.ToLower(u.Scheme)]
}

// Normalize turns typed input into a URL. Absolute paths become file:// URLs
// and bare hosts get https://. Anything else is returned trimmed.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return ""
	case HasKnownScheme(input):
		return input
	case filepath.IsAbs(input):
		return (&url.URL{Scheme: "file", Path: input}).String()
	case LooksLikeURL(input):
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input is a URL or a bare host such as
// "example.com/path" rather than free text.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if HasKnownScheme(input) || filepath.IsAbs(input) {
		return true
	}
	if strings.ContainsAny(input, " \t") {
		return false
	}
	host := input
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	return strings.Contains(host, ".") || strings.HasPrefix(host, "localhost")
}

// ExtractDomain returns the host of rawURL without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
