package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitegraph"
	"github.com/temoto/robotstxt"
)

// maxRobotsBytes caps how much of a robots.txt response is read.
const maxRobotsBytes = 512 * 1024

// Ensure RobotsChecker implements sitegraph.RobotsPolicy.
var _ sitegraph.RobotsPolicy = (*RobotsChecker)(nil)

// RobotsChecker applies robots.txt rules, fetching each host's file once.
// A robots.txt that is missing, unreadable or unparseable allows everything.
type RobotsChecker struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	rules map[string]*robotstxt.Group // nil group allows all
}

// NewRobotsChecker creates a RobotsChecker that matches rules for userAgent.
// If client is nil, http.DefaultClient is used; an empty userAgent falls
// back to DefaultUserAgent.
func NewRobotsChecker(client *http.Client, userAgent string) *RobotsChecker {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &RobotsChecker{
		client:    client,
		userAgent: userAgent,
		rules:     make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether rawURL may be fetched. Unparseable URLs are
// disallowed.
func (r *RobotsChecker) Allowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	group := r.group(ctx, u)
	if group == nil {
		return true
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return group.Test(path)
}

// CrawlDelay returns the Crawl-delay the host of rawURL asks for, or zero.
func (r *RobotsChecker) CrawlDelay(ctx context.Context, rawURL string) time.Duration {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return 0
	}
	group := r.group(ctx, u)
	if group == nil {
		return 0
	}
	return group.CrawlDelay
}

// group returns the cached rule group for u's host, fetching robots.txt on
// first use. The lock is held across the fetch so concurrent callers for
// the same host wait for one request.
func (r *RobotsChecker) group(ctx context.Context, u *url.URL) *robotstxt.Group {
	host := strings.ToLower(u.Host)

	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.rules[host]; ok {
		return g
	}
	g := r.fetch(ctx, u.Scheme, host)
	r.rules[host] = g
	return g
}

func (r *RobotsChecker) fetch(ctx context.Context, scheme, host string) *robotstxt.Group {
	if scheme == "" {
		scheme = "https"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scheme+"://"+host+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBytes))
	if err != nil {
		return nil
	}
	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	return data.FindGroup(r.userAgent)
}
