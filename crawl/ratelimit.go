package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/sitegraph"
	"golang.org/x/time/rate"
)

var _ sitegraph.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter with a burst of 1. A non-positive rate
// disables limiting.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a new DomainLimiter allowing rps requests per
// second to each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter := d.limiter(domain)
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// SetMinInterval slows the domain to at most one request per interval, as
// a robots.txt Crawl-delay asks. A faster configured rate is never raised.
func (d *DomainLimiter) SetMinInterval(domain string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	limiter := d.limiter(domain)
	if every := rate.Every(interval); every < limiter.Limit() {
		limiter.SetLimit(every)
	}
}

// limiter returns the domain's limiter, creating it. d.mu must be held.
func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	return limiter
}
