// Package goquery implements sitegraph.Extractor on top of goquery.
package goquery

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitegraph"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements sitegraph.Extractor at compile time.
var _ sitegraph.Extractor = (*Extractor)(nil)

// Extractor parses HTML into sitegraph.Page records.
type Extractor struct {
	// MaxTextLength bounds the text excerpt in characters.
	MaxTextLength int
}

// NewExtractor returns an Extractor with the default excerpt length.
func NewExtractor() *Extractor {
	return &Extractor{MaxTextLength: sitegraph.MaxTextLength}
}

// Extract builds the page record for src from its HTML. Malformed markup
// degrades to default values; only an unusable source URL is an error.
func (e *Extractor) Extract(src sitegraph.PageSource, body string) (*sitegraph.Page, error) {
	base, err := url.Parse(src.BaseURL())
	if err != nil || base.Host == "" {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "invalid page URL %q", src.BaseURL())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "failed to parse HTML: %v", err)
	}

	text := visibleText(doc, e.maxTextLength())
	page := &sitegraph.Page{
		URL:      src.URL,
		Title:    title(doc),
		Path:     sitegraph.URLPath(src.URL),
		Depth:    src.Depth,
		Headings: headings(doc),
		Counts: sitegraph.Counts{
			Forms:   doc.Find("form").Length(),
			Images:  doc.Find("img").Length(),
			Buttons: doc.Find("button").Length(),
			Inputs:  doc.Find("input").Length(),
		},
		Text:        text,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		Links:       links(doc, base, src.URL, src.Domain),
		Parent:      src.Parent,
	}
	if src.FinalURL != "" && src.FinalURL != src.URL {
		page.FinalURL = src.FinalURL
	}
	return page, nil
}

func (e *Extractor) maxTextLength() int {
	if e.MaxTextLength <= 0 {
		return sitegraph.MaxTextLength
	}
	return e.MaxTextLength
}

func title(doc *goquery.Document) string {
	t := strings.TrimSpace(doc.Find("title").First().Text())
	if t == "" {
		return sitegraph.DefaultTitle
	}
	return collapseSpace(t)
}

func headings(doc *goquery.Document) []string {
	out := []string{}
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if t := collapseSpace(sel.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// visibleText joins the trimmed text nodes of the body, skipping content
// that browsers never render, and truncates to max characters.
func visibleText(doc *goquery.Document, max int) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, collapseSpace(t))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return truncate(strings.Join(parts, " "), max)
}

// links returns the page's same-domain link targets, normalized, in
// document order and without duplicates or self references.
func links(doc *goquery.Document, base *url.URL, self, domain string) []string {
	seen := map[string]bool{self: true}
	out := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !strings.EqualFold(sitegraph.Hostname(resolved), domain) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		out = append(out, resolved)
	})
	return out
}

// resolveURL resolves href against base and returns its normalized form,
// or an empty string if it cannot be resolved to an http(s) URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	u, err := sitegraph.NormalizeURL(base.ResolveReference(ref).String())
	if err != nil {
		return ""
	}
	return u
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most max characters.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
