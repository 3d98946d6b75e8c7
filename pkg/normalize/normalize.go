// Package normalize holds the canonical forms for keywords and domains.
// Rank history rows are stored pre-normalized, so callers must run inputs
// through these before querying.
package normalize

import "strings"

// Keyword lowercases and trims a search keyword.
func Keyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Domain canonicalizes a domain: lowercase, trimmed, protocol and "www."
// prefixes stripped, trailing slashes stripped. Idempotent: the prefixes
// are stripped to a fixpoint so the output never changes under
// re-normalization, even for inputs like "www.www.example.com".
func Domain(s string) string {
	d := strings.ToLower(strings.TrimSpace(s))
	for {
		stripped := strings.TrimPrefix(d, "http://")
		stripped = strings.TrimPrefix(stripped, "https://")
		stripped = strings.TrimPrefix(stripped, "www.")
		if stripped == d {
			break
		}
		d = stripped
	}
	d = strings.TrimRight(d, "/")
	return d
}
