package urlutil

import (
	"net/url"
	"strings"
)

// Canonicalize maps equivalent spellings of an endpoint URL to one form:
//   - scheme and host are lowercased
//   - default ports (:80 for http, :443 for https) are dropped
//   - trailing slashes are removed from the path, except for the root "/"
//   - the fragment is removed
//   - query parameters are kept, sorted by key
//
// Canonicalize is idempotent and never mutates its input.
func Canonicalize(source url.URL) url.URL {
	canonical := source

	canonical.Scheme = strings.ToLower(canonical.Scheme)
	canonical.Host = strings.ToLower(canonical.Host)

	if host, port := canonical.Hostname(), canonical.Port(); port != "" {
		if (canonical.Scheme == "http" && port == "80") ||
			(canonical.Scheme == "https" && port == "443") {
			canonical.Host = host
		}
	}

	if len(canonical.Path) > 1 {
		canonical.Path = stripTrailingSlash(canonical.Path)
		canonical.RawPath = ""
	}

	canonical.Fragment = ""
	canonical.RawFragment = ""

	canonical.RawQuery = canonical.Query().Encode()
	canonical.ForceQuery = false

	return canonical
}

// CanonicalString canonicalizes raw. Input that does not parse as a URL
// is returned trimmed of surrounding whitespace.
func CanonicalString(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	canonical := Canonicalize(*u)
	return canonical.String()
}

func stripTrailingSlash(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
