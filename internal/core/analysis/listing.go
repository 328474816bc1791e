package analysis

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ListingSite names a real-estate site and the host/path globs that
// identify its listing URLs, e.g. "www.zillow.com/homedetails/**".
type ListingSite struct {
	Name     string
	Patterns []string
}

// ListingMatcher recognizes which listing site a URL belongs to. Recognition
// is informational; unrecognized URLs are still analyzed.
type ListingMatcher struct {
	sites []ListingSite
}

// NewListingMatcher validates every pattern and returns a matcher.
func NewListingMatcher(sites []ListingSite) (*ListingMatcher, error) {
	for _, site := range sites {
		for _, p := range site.Patterns {
			if !doublestar.ValidatePattern(p) {
				return nil, fmt.Errorf("listing %q: invalid pattern %q", site.Name, p)
			}
		}
	}
	return &ListingMatcher{sites: sites}, nil
}

// Match returns the name of the first site whose pattern matches raw, or an
// empty string. Scheme, query and fragment are ignored; the host is matched
// case-insensitively.
func (m *ListingMatcher) Match(raw string) string {
	target := matchTarget(raw)
	if target == "" {
		return ""
	}

	for _, site := range m.sites {
		for _, p := range site.Patterns {
			if ok, _ := doublestar.Match(p, target); ok {
				return site.Name
			}
		}
	}
	return ""
}

// matchTarget reduces a URL to "host/path". Inputs without a scheme are
// treated as starting with the host.
func matchTarget(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Host) + path
}
