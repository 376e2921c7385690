package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Ensure LoggingSitemapService implements sitegraph.SitemapService.
var _ sitegraph.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap lookup made for a coverage report.
type LoggingSitemapService struct {
	next   sitegraph.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next sitegraph.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service. Failures log at Warn.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"host", sitegraph.Hostname(baseURL),
			"count", len(urls),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("sitemap discovery failed", append(attrs, "err", err)...)
			return
		}
		if len(urls) == 0 {
			s.logger.Info("sitemap discovery found no sitemap", attrs...)
			return
		}
		s.logger.Info("sitemap discovery", attrs...)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
