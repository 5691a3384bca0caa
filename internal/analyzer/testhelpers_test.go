package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/marketscout/compete-cli/internal/fetcher"
)

// stubFetcher serves canned bodies keyed by exact URL, falling back to
// a default body. It records every requested URL.
type stubFetcher struct {
	bodies  map[string][]byte
	body    []byte
	err     error
	elapsed time.Duration
	calls   []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*fetcher.Response, error) {
	s.calls = append(s.calls, url)
	if s.err != nil {
		return nil, s.err
	}
	body := s.body
	if b, ok := s.bodies[url]; ok {
		body = b
	}
	if body == nil {
		return nil, errors.New("no stub body for " + url)
	}
	elapsed := s.elapsed
	if elapsed == 0 {
		elapsed = 5 * time.Millisecond
	}
	return &fetcher.Response{Body: body, StatusCode: 200, Elapsed: elapsed}, nil
}
