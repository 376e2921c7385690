package sitegraph

import (
	"slices"
	"strings"
	"sync"
)

// Edge is a directed link between two discovered pages.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the crawl graph over discovered pages.
//
// An edge A->B exists when A links to B and both pages are registered,
// whichever was registered first. Links to pages not yet registered are held
// until the target arrives. The discovery parent edge is always present, so
// every page is reachable from the root. Cross links and back links are kept,
// so the graph may contain cycles; the discovery tree is tracked separately
// in Children.
//
// Graph is safe for concurrent use. Once sealed it no longer accepts pages.
type Graph struct {
	mu       sync.RWMutex
	root     string
	pages    map[string]*Page
	order    []string
	children map[string][]string
	succ     map[string][]string
	pending  map[string][]string
	edges    map[Edge]struct{}
	sealed   bool
}

// NewGraph returns an empty graph rooted at the given normalized URL.
func NewGraph(root string) *Graph {
	return &Graph{
		root:     root,
		pages:    make(map[string]*Page),
		children: make(map[string][]string),
		succ:     make(map[string][]string),
		pending:  make(map[string][]string),
		edges:    make(map[Edge]struct{}),
	}
}

// AddPage registers a discovered page and the edges it completes.
// The root must be registered first; every other page must name an
// already registered parent.
func (g *Graph) AddPage(p *Page) error {
	if p == nil || p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		panic("sitegraph: AddPage called on sealed graph")
	}
	if _, ok := g.pages[p.URL]; ok {
		return Errorf(ECONFLICT, "page %q already registered", p.URL)
	}
	if len(g.order) == 0 && p.URL != g.root {
		return Errorf(EINVALID, "first page must be the root %q, got %q", g.root, p.URL)
	}
	if p.URL != g.root {
		if p.Parent == "" {
			return Errorf(EINVALID, "page %q has no parent", p.URL)
		}
		if _, ok := g.pages[p.Parent]; !ok {
			return Errorf(EINVALID, "parent %q of %q not registered", p.Parent, p.URL)
		}
	}

	g.pages[p.URL] = p
	g.order = append(g.order, p.URL)
	if p.Parent != "" {
		g.children[p.Parent] = append(g.children[p.Parent], p.URL)
	}

	for _, src := range g.pending[p.URL] {
		g.addEdge(src, p.URL)
	}
	delete(g.pending, p.URL)
	if p.Parent != "" {
		g.addEdge(p.Parent, p.URL)
	}

	for _, link := range p.Links {
		if link == p.URL {
			continue
		}
		if _, ok := g.pages[link]; ok {
			g.addEdge(p.URL, link)
			continue
		}
		g.pending[link] = append(g.pending[link], p.URL)
	}
	return nil
}

// addEdge must be called with mu held.
func (g *Graph) addEdge(from, to string) {
	e := Edge{From: from, To: to}
	if _, ok := g.edges[e]; ok {
		return
	}
	g.edges[e] = struct{}{}
	g.succ[from] = append(g.succ[from], to)
}

// Seal marks the crawl as complete. Successors are ordered by the position
// of the link in the source page.
func (g *Graph) Seal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed {
		return
	}
	for from, targets := range g.succ {
		links := g.pages[from].Links
		pos := func(u string) int {
			if i := slices.Index(links, u); i >= 0 {
				return i
			}
			return len(links)
		}
		slices.SortStableFunc(targets, func(a, b string) int {
			return pos(a) - pos(b)
		})
	}
	g.pending = nil
	g.sealed = true
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sealed
}

// Root returns the root URL.
func (g *Graph) Root() string {
	return g.root
}

// Len returns the number of registered pages.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Page returns the page registered under url.
func (g *Graph) Page(url string) (*Page, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.pages[url]
	return p, ok
}

// Pages returns all pages in discovery order.
func (g *Graph) Pages() []*Page {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pages := make([]*Page, len(g.order))
	for i, u := range g.order {
		pages[i] = g.pages[u]
	}
	return pages
}

// Successors returns the targets of url's out-edges.
func (g *Graph) Successors(url string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.succ[url])
}

// Children returns the pages first discovered from url, in discovery order.
func (g *Graph) Children(url string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.children[url])
}

// Edges returns all edges grouped by source in discovery order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, len(g.edges))
	for _, from := range g.order {
		for _, to := range g.succ[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// Text returns the text excerpts of all pages joined by spaces, in
// discovery order.
func (g *Graph) Text() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	texts := make([]string, len(g.order))
	for i, u := range g.order {
		texts[i] = g.pages[u].Text
	}
	return strings.Join(texts, " ")
}
