// Package crawl drives bounded depth-first traversal of a single site,
// building the crawl graph from fetched and extracted pages.
package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Crawl defaults.
const (
	DefaultMaxDepth    = 10
	DefaultMaxPages    = 500
	DefaultConcurrency = 4

	// visitedFalsePositiveRate sizes the visited-set Bloom filter.
	visitedFalsePositiveRate = 0.01
)

// Crawler crawls a site from a seed URL.
//
// Fetching runs on a pool of Concurrency workers. A single coordinator owns
// the frontier, the visited set, the page budget and graph registration,
// so visitation is exactly-once and the budget is never exceeded. With
// Concurrency 1 the traversal order is exactly depth-first in link order.
type Crawler struct {
	Fetcher   sitegraph.Fetcher
	Extractor sitegraph.Extractor

	// RateLimiter is optional.
	RateLimiter sitegraph.DomainLimiter

	// Robots is optional. Disallowed URLs are skipped without being
	// fetched and do not count against MaxPages.
	Robots sitegraph.RobotsPolicy

	// Logger is optional.
	Logger *slog.Logger

	// MaxDepth is the deepest discovery depth that is fetched; the seed
	// is depth 0.
	MaxDepth int

	// MaxPages caps the number of fetch attempts.
	MaxPages int

	Concurrency int
}

// Result holds the outcome of a crawl.
type Result struct {
	Graph      *sitegraph.Graph
	Domain     string
	StopReason sitegraph.StopReason

	// Fetched counts registered pages; Failed counts branches dropped on
	// fetch or extraction errors.
	Fetched int
	Failed  int

	// Skipped counts URLs excluded by the robots policy.
	Skipped int

	Duration time.Duration
}

// Crawl traverses the site rooted at seedURL. Fetch failures drop their
// branch and never fail the crawl. Cancellation and budget exhaustion stop
// the crawl early; the partial graph is still returned, sealed, with the
// reason recorded. Only an invalid seed URL is an error.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (*Result, error) {
	seed, err := sitegraph.NormalizeURL(seedURL)
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	w := c.newWalk(seed)
	w.run(ctx)
	w.graph.Seal()

	res := &Result{
		Graph:      w.graph,
		Domain:     w.domain,
		StopReason: w.stop,
		Fetched:    w.fetched,
		Failed:     w.failed,
		Skipped:    w.skipped,
		Duration:   time.Since(begin),
	}
	w.logger.Info("crawl finished",
		"url", seed,
		"pages", res.Fetched,
		"failed", res.Failed,
		"skipped", res.Skipped,
		"edges", res.Graph.EdgeCount(),
		"stop", res.StopReason,
		"duration", res.Duration,
	)
	return res, nil
}

func (c *Crawler) newWalk(seed string) *walk {
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &walk{
		fetcher:     c.Fetcher,
		extractor:   c.Extractor,
		limiter:     c.RateLimiter,
		robots:      c.Robots,
		logger:      logger,
		domain:      sitegraph.Hostname(seed),
		graph:       sitegraph.NewGraph(seed),
		frontier:    NewFrontier(),
		visited:     NewVisitedSet(uint(maxPages)*4, visitedFalsePositiveRate),
		budget:      newBudget(maxPages),
		maxDepth:    maxDepth,
		concurrency: concurrency,
		stop:        sitegraph.StopComplete,
	}
	w.frontier.Push(Task{URL: seed, Depth: 0})
	return w
}
