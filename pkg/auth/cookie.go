package auth

import (
	"net/url"
	"strings"
)

// CookieSettings contains cookie security settings derived from base URL.
type CookieSettings struct {
	// Secure indicates whether the cookie should only be sent over HTTPS.
	Secure bool
	// Domain is the cookie domain scope (e.g., ".seobandwagon.com" for
	// cross-subdomain sharing).
	Domain string
}

// DeriveCookieSettings automatically determines cookie security settings
// from the base URL. This supports the hosting scenarios we run:
//   - Local development (http://localhost:3000) → Secure: false, Domain: ""
//   - Staging (https://app.dev.seobandwagon.com) → Secure: true, Domain: ".dev.seobandwagon.com"
//   - Production (https://app.seobandwagon.com) → Secure: true, Domain: ".seobandwagon.com"
//
// The configCookieDomain parameter allows explicit override if needed.
func DeriveCookieSettings(baseURL string, configCookieDomain string) CookieSettings {
	if configCookieDomain != "" {
		return CookieSettings{
			Secure: isHTTPS(baseURL),
			Domain: configCookieDomain,
		}
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		// Safe defaults for invalid URLs
		return CookieSettings{Secure: true, Domain: ""}
	}

	secure := parsedURL.Scheme != "http"
	hostname := parsedURL.Hostname()

	var domain string
	switch {
	case hostname == "localhost" || hostname == "127.0.0.1":
		domain = ""
	case strings.HasSuffix(hostname, ".dev.seobandwagon.com"):
		domain = ".dev.seobandwagon.com"
	case strings.HasSuffix(hostname, ".seobandwagon.com"):
		domain = ".seobandwagon.com"
	default:
		// Unknown host: isolate to the specific hostname
		domain = ""
	}

	return CookieSettings{
		Secure: secure,
		Domain: domain,
	}
}

// isHTTPS determines if the given base URL uses HTTPS protocol.
// Returns true for HTTPS, false for HTTP, true for empty/invalid URLs.
func isHTTPS(baseURL string) bool {
	if baseURL == "" {
		return true
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return true
	}

	return parsedURL.Scheme != "http"
}
