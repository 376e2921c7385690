package sitegraph

import (
	"context"
	"fmt"
)

// FetchResult is the outcome of a successful fetch.
type FetchResult struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL the response was served from after redirects.
	FinalURL string

	StatusCode int
	Body       string

	// Insecure reports whether the body was retrieved with certificate
	// verification disabled.
	Insecure bool
}

// Redirected reports whether the response came from a different URL than
// the one requested.
func (r *FetchResult) Redirected() bool {
	return r.FinalURL != "" && r.FinalURL != r.URL
}

// FetchErrorKind classifies fetch failures.
type FetchErrorKind string

// FetchErrorKind constants.
const (
	FetchNetwork FetchErrorKind = "network"
	FetchTLS     FetchErrorKind = "tls"
	FetchStatus  FetchErrorKind = "status"
)

// FetchError is returned when a page cannot be retrieved. Ordinary HTTP
// error statuses are reported as FetchStatus with the status code set.
type FetchError struct {
	URL        string
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == FetchStatus {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves raw page content over HTTP.
type Fetcher interface {
	// Fetch retrieves the page at url. Failures are returned as *FetchError.
	// The context controls cancellation; implementations apply their own
	// per-request timeout.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// RobotsPolicy decides whether a URL may be crawled under the site's
// robots.txt rules.
type RobotsPolicy interface {
	Allowed(ctx context.Context, url string) bool
}
