package sitegraph

import "time"

// StopReason describes why a crawl ended.
type StopReason string

// StopReason constants.
const (
	StopComplete StopReason = "complete"
	StopBudget   StopReason = "budget"
	StopCanceled StopReason = "canceled"
)

// HierarchyNode is a node of the discovery tree.
type HierarchyNode struct {
	URL      string           `json:"url"`
	Title    string           `json:"title"`
	Path     string           `json:"path"`
	Depth    int              `json:"depth"`
	Children []*HierarchyNode `json:"children"`
}

// Find returns the node for url in the subtree rooted at n.
func (n *HierarchyNode) Find(url string) *HierarchyNode {
	if n == nil {
		return nil
	}
	if n.URL == url {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(url); found != nil {
			return found
		}
	}
	return nil
}

// Structure is the durable result of crawling and modeling a site.
type Structure struct {
	URL           string                `json:"url"`
	Domain        string                `json:"domain"`
	Category      Category              `json:"category"`
	Confidence    float64               `json:"confidence"`
	Probabilities []CategoryProbability `json:"probabilities"`
	Strategy      Strategy              `json:"strategy"`
	PageCount     int                   `json:"pageCount"`
	EdgeCount     int                   `json:"edgeCount"`
	Pages         map[string]*Page      `json:"pages"`

	// Order lists page URLs in discovery order.
	Order     []string              `json:"order"`
	Edges     []Edge                `json:"edges"`
	Hierarchy *HierarchyNode        `json:"hierarchy"`
	Paths     map[string][][]string `json:"paths"`

	StopReason StopReason `json:"stopReason"`
	CrawledAt  time.Time  `json:"crawledAt"`
}

// Page returns the page for rawURL, normalizing it first.
func (s *Structure) Page(rawURL string) (*Page, bool) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, false
	}
	p, ok := s.Pages[u]
	return p, ok
}

// PathsTo returns the enumerated paths from the seed to url.
func (s *Structure) PathsTo(url string) [][]string {
	return s.Paths[url]
}

// Children returns the hierarchy children of url.
func (s *Structure) Children(url string) []*Page {
	node := s.Hierarchy.Find(url)
	if node == nil {
		return nil
	}
	pages := make([]*Page, 0, len(node.Children))
	for _, c := range node.Children {
		if p, ok := s.Pages[c.URL]; ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// HasForms reports whether any page contains a form.
func (s *Structure) HasForms() bool {
	for _, p := range s.Pages {
		if p.Forms > 0 {
			return true
		}
	}
	return false
}

// Apply copies a classification onto the structure.
func (s *Structure) Apply(c *Classification) {
	if c == nil {
		return
	}
	s.Category = c.Category
	s.Confidence = c.Confidence
	s.Probabilities = c.Probabilities
	s.Strategy = c.Strategy
}
