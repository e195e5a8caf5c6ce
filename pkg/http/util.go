package http

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam is a single query string pair.
type QueryParam struct {
	Key   string
	Value string
}

// BuildURL joins baseURL and path and appends params in the given order.
// Unlike url.Values.Encode, the order of params is preserved.
func BuildURL(baseURL, path string, params []QueryParam) (string, error) {
	// Parse the base URL
	parsedURL, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	if parsedURL.RawQuery != "" || parsedURL.ForceQuery || parsedURL.Fragment != "" {
		return "", fmt.Errorf("base URL %q must not have a query or fragment", baseURL)
	}

	var b strings.Builder
	b.WriteString(parsedURL.String())
	b.WriteString("/")
	b.WriteString(strings.TrimLeft(path, "/"))

	for i, p := range params {
		if i == 0 {
			b.WriteString("?")
		} else {
			b.WriteString("&")
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(p.Value))
	}

	return b.String(), nil
}

// RedactURL masks credential-bearing query values so a URL can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		key, _, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.ToLower(key) {
		case "apikey", "api_key", "access_token", "client_secret":
			parts[i] = key + "=REDACTED"
		}
	}
	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}
