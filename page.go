package sitegraph

// MaxTextLength is the maximum number of characters kept in a page's
// text excerpt.
const MaxTextLength = 1000

// DefaultTitle is used for pages without a title.
const DefaultTitle = "No Title"

// Counts holds the number of interactive elements found on a page.
type Counts struct {
	Forms   int `json:"forms"`
	Images  int `json:"images"`
	Buttons int `json:"buttons"`
	Inputs  int `json:"inputs"`
}

// Page is a discovered page, identified by its normalized URL.
type Page struct {
	URL      string   `json:"url"`
	FinalURL string   `json:"finalUrl,omitempty"`
	Title    string   `json:"title"`
	Path     string   `json:"path"`
	Depth    int      `json:"depth"`
	Headings []string `json:"headers"`
	Counts
	Text        string   `json:"text"`
	ContentHash string   `json:"contentHash"`
	Links       []string `json:"links"`

	// Parent is the page that first discovered this page; empty for the seed.
	Parent string `json:"parent,omitempty"`
}

// HasLink reports whether the page links to target.
func (p *Page) HasLink(target string) bool {
	for _, l := range p.Links {
		if l == target {
			return true
		}
	}
	return false
}

// PageSource describes where a fetched document came from.
type PageSource struct {
	// URL is the normalized identity of the page.
	URL string

	// FinalURL is the post-redirect URL used to resolve relative links.
	FinalURL string

	Parent string
	Depth  int

	// Domain is the crawl's target host; links to other hosts are dropped.
	Domain string
}

// BaseURL returns the URL relative links are resolved against.
func (s PageSource) BaseURL() string {
	if s.FinalURL != "" {
		return s.FinalURL
	}
	return s.URL
}

// Extractor parses fetched HTML into a Page record.
type Extractor interface {
	// Extract never fails on malformed markup; missing values degrade to
	// defaults. An error is returned only when the source URL is invalid.
	Extract(src PageSource, html string) (*Page, error)
}
