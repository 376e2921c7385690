// Package http provides HTTP implementations of sitegraph.Fetcher and
// sitegraph.SitemapService for static sites.
package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/sitegraph"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies requests as a desktop Chrome browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Ensure Fetcher implements sitegraph.Fetcher at compile time.
var _ sitegraph.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript.
//
// On a certificate verification failure the request is retried once with
// verification disabled when the insecure fallback is enabled. The fallback
// is always logged.
type Fetcher struct {
	client           *http.Client
	insecure         *http.Client
	timeout          time.Duration
	userAgent        string
	insecureFallback bool
	transport        *http.Transport
	logger           *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithInsecureFallback enables or disables the single retry without
// certificate verification. Enabled by default.
func WithInsecureFallback(enabled bool) Option {
	return func(f *Fetcher) {
		f.insecureFallback = enabled
	}
}

// WithTransport sets the base transport. The insecure fallback clones it.
func WithTransport(t *http.Transport) Option {
	return func(f *Fetcher) {
		f.transport = t
	}
}

// WithLogger sets the logger used to report TLS fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:          DefaultFetchTimeout,
		userAgent:        DefaultUserAgent,
		insecureFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.New(slog.DiscardHandler)
	}
	if f.transport == nil {
		f.transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
	}

	insecureTransport := f.transport.Clone()
	insecureTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	f.insecure = &http.Client{
		Timeout:   f.timeout,
		Transport: insecureTransport,
	}

	return f
}

// Fetch retrieves the page at url. Non-2xx statuses, network failures and
// TLS failures are returned as *sitegraph.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitegraph.FetchResult, error) {
	res, err := f.do(ctx, f.client, url)
	if err == nil || !f.insecureFallback {
		return res, err
	}

	var fe *sitegraph.FetchError
	if !errors.As(err, &fe) || fe.Kind != sitegraph.FetchTLS {
		return nil, err
	}

	f.logger.Warn("certificate verification failed, retrying without verification",
		"url", url,
		"err", fe.Err,
	)
	res, err = f.do(ctx, f.insecure, url)
	if err != nil {
		return nil, err
	}
	res.Insecure = true
	return res, nil
}

func (f *Fetcher) do(ctx context.Context, client *http.Client, url string) (*sitegraph.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &sitegraph.FetchError{URL: url, Kind: sitegraph.FetchNetwork, Err: err}
	}
	setBrowserHeaders(req, f.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		kind := sitegraph.FetchNetwork
		if isTLSError(err) {
			kind = sitegraph.FetchTLS
		}
		return nil, &sitegraph.FetchError{URL: url, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &sitegraph.FetchError{URL: url, Kind: sitegraph.FetchStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &sitegraph.FetchError{URL: url, Kind: sitegraph.FetchNetwork, Err: err}
	}

	return &sitegraph.FetchResult{
		URL:        url,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// setBrowserHeaders sets the headers a desktop browser sends on navigation.
// Accept-Encoding is left to the transport so compressed bodies are decoded.
func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
}

// isTLSError reports whether err is a certificate or handshake failure.
func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	var unknownAuth x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	var recordErr tls.RecordHeaderError
	return errors.As(err, &certErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &recordErr)
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	f.insecure.CloseIdleConnections()
	return nil
}
