// Package url provides URL helpers shared by the favicon components.
package url

import (
	"net/url"
	"strings"
)

// InternalScheme is the scheme of pages rendered by the browser itself.
const InternalScheme = "tabicon"

// IsNativeURL reports whether rawURL is rendered natively rather than by the
// engine (about: pages and internal scheme pages). Native pages never show a favicon.
func IsNativeURL(rawURL string) bool {
	switch {
	case strings.HasPrefix(rawURL, "about:"):
		return true
	case strings.HasPrefix(rawURL, InternalScheme+"://"):
		return true
	}
	return false
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

// SanitizeDomainForPNG converts a domain to a safe filename with .png extension.
func SanitizeDomainForPNG(domain string) string {
	return sanitizeDomain(domain) + ".png"
}

// sanitizeDomain replaces unsafe filesystem characters with underscores.
func sanitizeDomain(domain string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		"\\", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(domain)
}
