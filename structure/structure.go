// Package structure derives the hierarchy and path set of a sealed crawl
// graph and assembles the structure document.
package structure

import (
	"time"

	"github.com/fwojciec/sitegraph"
)

// DefaultMaxPaths caps the paths kept per page.
const DefaultMaxPaths = 100

// Options controls path enumeration.
type Options struct {
	// MaxPaths caps the number of paths enumerated per page. Zero means
	// unlimited; enumeration is exponential on densely linked sites.
	MaxPaths int
}

// Derive builds the structure document for a sealed graph. The
// classification may be nil, in which case the category is unknown.
func Derive(g *sitegraph.Graph, cls *sitegraph.Classification, opts Options, stop sitegraph.StopReason) *sitegraph.Structure {
	pages := g.Pages()
	s := &sitegraph.Structure{
		URL:        g.Root(),
		Domain:     sitegraph.Hostname(g.Root()),
		Category:   sitegraph.CategoryUnknown,
		PageCount:  len(pages),
		EdgeCount:  g.EdgeCount(),
		Pages:      make(map[string]*sitegraph.Page, len(pages)),
		Order:      make([]string, 0, len(pages)),
		Edges:      g.Edges(),
		Hierarchy:  BuildHierarchy(g),
		Paths:      AllPaths(g, opts),
		StopReason: stop,
		CrawledAt:  time.Now().UTC(),
	}
	for _, p := range pages {
		s.Pages[p.URL] = p
		s.Order = append(s.Order, p.URL)
	}
	s.Apply(cls)
	return s
}

// BuildHierarchy returns the discovery tree rooted at the seed. Each page
// appears exactly once, under the page that first discovered it. It returns
// nil if the root was never registered.
func BuildHierarchy(g *sitegraph.Graph) *sitegraph.HierarchyNode {
	if _, ok := g.Page(g.Root()); !ok {
		return nil
	}
	return buildNode(g, g.Root())
}

func buildNode(g *sitegraph.Graph, url string) *sitegraph.HierarchyNode {
	p, _ := g.Page(url)
	node := &sitegraph.HierarchyNode{
		URL:      p.URL,
		Title:    p.Title,
		Path:     p.Path,
		Depth:    p.Depth,
		Children: []*sitegraph.HierarchyNode{},
	}
	for _, child := range g.Children(url) {
		node.Children = append(node.Children, buildNode(g, child))
	}
	return node
}
