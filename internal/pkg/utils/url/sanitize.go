// Package url contains helpers for URLs printed to logs.
package url

import (
	"net/url"
)

// SanitizeURLString removes the userinfo part of a URL.
// If the URL is malformed or has no userinfo, the original string is returned.
func SanitizeURLString(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}

	u.User = nil
	return u.String()
}
