package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitegraph"
	"github.com/temoto/robotstxt"
)

// maxIndexDepth bounds how deeply sitemap indexes may nest.
const maxIndexDepth = 3

// Ensure SitemapService implements sitegraph.SitemapService.
var _ sitegraph.SitemapService = (*SitemapService)(nil)

// SitemapService lists the URLs a site publishes in its sitemaps. Sitemaps
// are located through robots.txt with /sitemap.xml as the fallback; both
// <urlset> documents and <sitemapindex> documents are understood, plain or
// gzip-compressed.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the normalized page URLs listed for baseURL's host,
// in sitemap order and without duplicates. URLs on other hosts are dropped.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "invalid base URL %q", baseURL)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}
	host := sitegraph.Hostname(baseURL)

	sitemaps, err := s.locate(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{
		svc:     s,
		host:    host,
		visited: make(map[string]bool),
		seen:    make(map[string]bool),
		urls:    []string{},
	}
	for _, sm := range sitemaps {
		if err := w.walk(ctx, sm, 0); err != nil {
			return nil, err
		}
	}
	return w.urls, nil
}

// locate returns sitemap locations declared in robots.txt, or /sitemap.xml
// when robots.txt declares none and that document exists.
func (s *SitemapService) locate(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if declared, err := s.robotsSitemaps(ctx, robots); err == nil && len(declared) > 0 {
		return declared, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	body, err := s.get(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	body.Close()
	return []string{fallback}, nil
}

// robotsSitemaps extracts Sitemap: directives from robots.txt.
func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, maxRobotsBytes))
	if err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	data, err := robotstxt.FromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing robots.txt: %w", err)
	}
	return data.Sitemaps, nil
}

// sitemapWalk accumulates URLs across one discovery.
type sitemapWalk struct {
	svc     *SitemapService
	host    string
	visited map[string]bool
	seen    map[string]bool
	urls    []string
}

func (w *sitemapWalk) walk(ctx context.Context, loc string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[loc] || depth > maxIndexDepth {
		return nil
	}
	w.visited[loc] = true

	root, err := w.svc.document(ctx, loc)
	if err != nil {
		return err
	}

	switch root.Tag {
	case "sitemapindex":
		for _, child := range locs(root, "sitemap") {
			if err := w.walk(ctx, child, depth+1); err != nil {
				return err
			}
		}
	case "urlset":
		for _, raw := range locs(root, "url") {
			u, err := sitegraph.NormalizeURL(raw)
			if err != nil || sitegraph.Hostname(u) != w.host || w.seen[u] {
				continue
			}
			w.seen[u] = true
			w.urls = append(w.urls, u)
		}
	default:
		return fmt.Errorf("unexpected sitemap root <%s> in %s", root.Tag, loc)
	}
	return nil
}

// locs returns the trimmed <loc> texts of root's children named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// document fetches and parses one sitemap, decompressing gzip payloads.
func (s *SitemapService) document(ctx context.Context, loc string) (*etree.Element, error) {
	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	br := bufio.NewReader(body)
	var r io.Reader = br
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("decompressing sitemap %s: %w", loc, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML %s: %w", loc, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML %s", loc)
	}
	return root, nil
}

// get fetches targetURL and returns the body of a 200 response.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &sitegraph.FetchError{URL: targetURL, Kind: sitegraph.FetchStatus, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
