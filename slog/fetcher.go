// Package slog provides logging decorators for sitegraph services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Ensure LoggingFetcher implements sitegraph.Fetcher.
var _ sitegraph.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with one record per fetch.
type LoggingFetcher struct {
	next   sitegraph.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitegraph.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *sitegraph.FetchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if res != nil {
			attrs = append(attrs, "status", res.StatusCode, "bytes", len(res.Body))
			if res.Redirected() {
				attrs = append(attrs, "final", res.FinalURL)
			}
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
