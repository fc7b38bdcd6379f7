package config

import "strings"

const legacyScheme = "postgresql+psycopg2://"
const canonicalScheme = "postgresql://"

// RewritePostgresURL rewrites the scheme "postgresql+psycopg2://" to
// "postgresql://" and percent-encodes any literal '#' in the password
// portion (between the first ':' after the scheme and the '@') as "%23".
// No other characters are touched. Both rewrites are applied
// independently: a URL with no legacy scheme prefix but a '#' in its
// password is still fixed up, and vice versa (spec §6, Scenario F).
func RewritePostgresURL(raw string) string {
	if strings.HasPrefix(raw, legacyScheme) {
		raw = canonicalScheme + raw[len(legacyScheme):]
	}

	schemeEnd := strings.Index(raw, "://")
	if schemeEnd < 0 {
		return raw
	}
	rest := raw[schemeEnd+3:]

	at := strings.Index(rest, "@")
	if at < 0 {
		return raw
	}
	colon := strings.Index(rest, ":")
	if colon < 0 || colon >= at {
		return raw
	}

	password := rest[colon+1 : at]
	if !strings.Contains(password, "#") {
		return raw
	}

	encoded := strings.ReplaceAll(password, "#", "%23")
	rest = rest[:colon+1] + encoded + rest[at:]
	return raw[:schemeEnd+3] + rest
}
