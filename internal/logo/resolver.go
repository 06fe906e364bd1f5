// Package logo resolves station artwork references into absolute URLs.
package logo

import (
	"net/url"
	"strings"
)

// Resolver turns the raw logo value stored on a station into the URL
// written to exports. Relative paths are joined onto BaseURL and blank
// values are replaced with Placeholder.
type Resolver struct {
	BaseURL     string
	Placeholder string
}

// NewResolver builds a resolver with the given base and placeholder URLs.
func NewResolver(baseURL, placeholder string) *Resolver {
	return &Resolver{
		BaseURL:     strings.TrimSpace(baseURL),
		Placeholder: strings.TrimSpace(placeholder),
	}
}

// ResolveLogoURL implements selection.LogoResolver.
func (r *Resolver) ResolveLogoURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if r == nil {
			return ""
		}
		return r.Placeholder
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return raw
	}
	if r == nil || r.BaseURL == "" {
		return raw
	}
	base, err := url.Parse(r.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	// A base without a trailing slash would otherwise drop its last segment.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	ref.Path = strings.TrimPrefix(ref.Path, "/")
	return base.ResolveReference(ref).String()
}
