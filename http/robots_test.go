package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sghttp "github.com/fwojciec/sitegraph/http"
	"github.com/stretchr/testify/assert"
)

func TestRobotsChecker_Allowed(t *testing.T) {
	t.Parallel()

	t.Run("applies disallow rules", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nAllow: /private/open\n",
		})
		rc := sghttp.NewRobotsChecker(srv.Client(), "")
		ctx := context.Background()

		assert.True(t, rc.Allowed(ctx, srv.URL+"/"))
		assert.True(t, rc.Allowed(ctx, srv.URL+"/docs"))
		assert.False(t, rc.Allowed(ctx, srv.URL+"/private/notes"))
		assert.True(t, rc.Allowed(ctx, srv.URL+"/private/open"))
	})

	t.Run("missing robots.txt allows everything", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		rc := sghttp.NewRobotsChecker(srv.Client(), "")

		assert.True(t, rc.Allowed(context.Background(), srv.URL+"/anything"))
	})

	t.Run("server errors allow everything", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)
		rc := sghttp.NewRobotsChecker(srv.Client(), "")

		assert.True(t, rc.Allowed(context.Background(), srv.URL+"/x"))
	})

	t.Run("fetches robots.txt once per host", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/robots.txt" {
				hits.Add(1)
				_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin\n"))
				return
			}
			http.NotFound(w, r)
		}))
		t.Cleanup(srv.Close)
		rc := sghttp.NewRobotsChecker(srv.Client(), "")
		ctx := context.Background()

		assert.False(t, rc.Allowed(ctx, srv.URL+"/admin"))
		assert.True(t, rc.Allowed(ctx, srv.URL+"/"))
		assert.True(t, rc.Allowed(ctx, srv.URL+"/blog"))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("agent specific group wins", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: sitegraph\nDisallow: /\n\nUser-agent: *\nDisallow:\n",
		})
		ctx := context.Background()

		assert.False(t, sghttp.NewRobotsChecker(srv.Client(), "sitegraph").Allowed(ctx, srv.URL+"/page"))
		assert.True(t, sghttp.NewRobotsChecker(srv.Client(), "otherbot").Allowed(ctx, srv.URL+"/page"))
	})

	t.Run("reports crawl delay", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nCrawl-delay: 2\nDisallow: /tmp\n",
		})
		rc := sghttp.NewRobotsChecker(srv.Client(), "")

		assert.Equal(t, 2*time.Second, rc.CrawlDelay(context.Background(), srv.URL+"/"))
	})

	t.Run("no robots.txt means no crawl delay", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		rc := sghttp.NewRobotsChecker(srv.Client(), "")

		assert.Zero(t, rc.CrawlDelay(context.Background(), srv.URL+"/"))
	})

	t.Run("invalid URL is disallowed", func(t *testing.T) {
		t.Parallel()

		rc := sghttp.NewRobotsChecker(nil, "")
		assert.False(t, rc.Allowed(context.Background(), "not a url"))
	})
}
