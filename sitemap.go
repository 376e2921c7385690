package sitegraph

import (
	"context"
	"slices"
)

// SitemapService discovers URLs listed in a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the URLs listed for baseURL's host.
	// Returns an empty slice when the site has no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// Coverage compares a site's sitemap against the pages a crawl discovered.
type Coverage struct {
	Listed     int `json:"listed"`
	Discovered int `json:"discovered"`

	// Missing lists sitemap URLs the crawl did not reach.
	Missing []string `json:"missing"`

	// Unlisted lists discovered pages absent from the sitemap.
	Unlisted []string `json:"unlisted"`
}

// Ratio returns the fraction of listed URLs that were discovered.
func (c *Coverage) Ratio() float64 {
	if c.Listed == 0 {
		return 0
	}
	return float64(c.Listed-len(c.Missing)) / float64(c.Listed)
}

// ComputeCoverage compares sitemap URLs with the structure's pages.
// Sitemap entries are normalized and those on other hosts are ignored.
func ComputeCoverage(sitemapURLs []string, s *Structure) *Coverage {
	listed := make(map[string]bool)
	var order []string
	for _, raw := range sitemapURLs {
		u, err := NormalizeURL(raw)
		if err != nil || Hostname(u) != s.Domain || listed[u] {
			continue
		}
		listed[u] = true
		order = append(order, u)
	}

	cov := &Coverage{
		Listed:     len(order),
		Discovered: len(s.Pages),
		Missing:    []string{},
		Unlisted:   []string{},
	}
	for _, u := range order {
		if _, ok := s.Pages[u]; !ok {
			cov.Missing = append(cov.Missing, u)
		}
	}
	for u := range s.Pages {
		if !listed[u] {
			cov.Unlisted = append(cov.Unlisted, u)
		}
	}
	slices.Sort(cov.Unlisted)
	return cov
}
