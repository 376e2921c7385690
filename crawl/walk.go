package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/fwojciec/sitegraph"
	"golang.org/x/sync/errgroup"
)

// budget is a shared page budget.
type budget struct {
	limit int64
	used  atomic.Int64
}

func newBudget(limit int) *budget {
	return &budget{limit: int64(limit)}
}

// take reserves one page. It returns false once the budget is spent.
func (b *budget) take() bool {
	for {
		n := b.used.Load()
		if n >= b.limit {
			return false
		}
		if b.used.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// fetchOutcome is what a worker reports for one task.
type fetchOutcome struct {
	task Task
	res  *sitegraph.FetchResult
	err  error
}

// walk is the state of one crawl. Everything except the worker fetches is
// owned by the coordinator goroutine.
type walk struct {
	fetcher   sitegraph.Fetcher
	extractor sitegraph.Extractor
	limiter   sitegraph.DomainLimiter
	robots    sitegraph.RobotsPolicy
	logger    *slog.Logger

	domain   string
	graph    *sitegraph.Graph
	frontier *Frontier
	visited  *VisitedSet
	budget   *budget

	maxDepth    int
	concurrency int

	stop    sitegraph.StopReason
	fetched int
	failed  int
	skipped int
}

// run dispatches tasks to the worker pool until the frontier drains, the
// budget is spent or ctx is canceled. A task is only dispatched while fewer
// than concurrency tasks are in flight, so with one worker the next task is
// chosen after the previous page's links are on the stack.
func (w *walk) run(ctx context.Context) {
	workCh := make(chan Task, w.concurrency)
	resultCh := make(chan fetchOutcome, w.concurrency)

	var g errgroup.Group
	for range w.concurrency {
		g.Go(func() error {
			for t := range workCh {
				resultCh <- w.fetch(ctx, t)
			}
			return nil
		})
	}

	pending := 0
coordinatorLoop:
	for {
		if ctx.Err() != nil {
			w.stop = sitegraph.StopCanceled
			break
		}

		for pending < w.concurrency {
			t, ok := w.next(ctx)
			if !ok {
				break
			}
			workCh <- t
			pending++
		}
		if pending == 0 {
			break
		}

		select {
		case <-ctx.Done():
			w.stop = sitegraph.StopCanceled
			break coordinatorLoop
		case out := <-resultCh:
			pending--
			w.handle(out)
		}
	}

	close(workCh)
	for ; pending > 0; pending-- {
		w.handle(<-resultCh)
	}
	_ = g.Wait()
}

// next pops the next dispatchable task and marks it visited.
func (w *walk) next(ctx context.Context) (Task, bool) {
	for {
		t, ok := w.frontier.Pop()
		if !ok {
			return Task{}, false
		}
		if w.visited.Visited(t.URL) {
			continue
		}
		if t.Depth > w.maxDepth {
			continue
		}
		if w.robots != nil && !w.robots.Allowed(ctx, t.URL) {
			w.visited.MarkVisited(t.URL)
			w.skipped++
			w.logger.Debug("disallowed by robots.txt", "url", t.URL)
			continue
		}
		if !w.budget.take() {
			w.stop = sitegraph.StopBudget
			return Task{}, false
		}
		w.visited.MarkVisited(t.URL)
		return t, true
	}
}

// adoptDomain switches the crawl to the host the seed redirected to, so
// links on the landing page count as internal. The seed is the only task in
// flight at this point.
func (w *walk) adoptDomain(finalURL string) {
	host := sitegraph.Hostname(finalURL)
	if host == "" || host == w.domain {
		return
	}
	w.logger.Info("seed redirected to another host", "from", w.domain, "to", host)
	w.domain = host
}

// fetch runs on a worker goroutine.
func (w *walk) fetch(ctx context.Context, t Task) fetchOutcome {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx, w.domain); err != nil {
			return fetchOutcome{task: t, err: err}
		}
	}
	res, err := w.fetcher.Fetch(ctx, t.URL)
	return fetchOutcome{task: t, res: res, err: err}
}

// handle registers a fetched page and pushes its unvisited links.
func (w *walk) handle(out fetchOutcome) {
	t := out.task
	if out.err != nil {
		w.failed++
		w.logger.Warn("fetch failed", "url", t.URL, "depth", t.Depth, "err", out.err)
		return
	}

	if t.Depth == 0 && out.res.Redirected() {
		w.adoptDomain(out.res.FinalURL)
	}
	src := sitegraph.PageSource{
		URL:    t.URL,
		Parent: t.Parent,
		Depth:  t.Depth,
		Domain: w.domain,
	}
	if out.res.Redirected() {
		src.FinalURL = out.res.FinalURL
		if final, err := sitegraph.NormalizeURL(out.res.FinalURL); err == nil && final != t.URL {
			w.visited.MarkVisited(final)
		}
	}

	page, err := w.extractor.Extract(src, out.res.Body)
	if err != nil {
		w.failed++
		w.logger.Warn("extract failed", "url", t.URL, "err", err)
		return
	}
	if err := w.graph.AddPage(page); err != nil {
		w.failed++
		w.logger.Error("register page", "url", t.URL, "err", err)
		return
	}
	w.fetched++
	w.logger.Debug("page registered", "url", t.URL, "depth", t.Depth, "links", len(page.Links))

	if t.Depth >= w.maxDepth {
		return
	}
	children := make([]Task, 0, len(page.Links))
	for _, link := range page.Links {
		if !w.visited.Visited(link) {
			children = append(children, Task{URL: link, Parent: page.URL, Depth: t.Depth + 1})
		}
	}
	w.frontier.Push(children...)
}
