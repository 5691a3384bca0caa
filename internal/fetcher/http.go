package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Options configures the HTTP fetcher.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// MinDelay is the minimum spacing between any two outbound
	// requests issued through this fetcher, regardless of caller.
	MinDelay time.Duration
}

// HTTPFetcher implements Fetcher using net/http behind a single
// rate limiter. One instance is shared by all analyzers of an
// invocation so their requests stay serialized with the configured
// spacing; redirects are followed and a fixed identifying User-Agent
// is always sent.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	opts    Options
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MinDelay <= 0 {
		opts.MinDelay = time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "CompetitiveAnalysis/0.1 (Research Tool)"
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Every(opts.MinDelay), 1),
		opts:    opts,
	}
}

// Fetch issues a rate-limited GET and returns the response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetch: rate limiter wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: get %s", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: read body from %s", rawURL)
	}
	elapsed := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Errorf("fetch: status %d from %s", resp.StatusCode, rawURL)
	}

	return &Response{
		Body:       body,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
	}, nil
}
