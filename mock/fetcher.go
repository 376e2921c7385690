package mock

import (
	"context"

	"github.com/fwojciec/sitegraph"
)

var _ sitegraph.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitegraph.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sitegraph.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitegraph.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ sitegraph.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitegraph.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ sitegraph.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of sitegraph.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) bool {
	return p.AllowedFn(ctx, url)
}
