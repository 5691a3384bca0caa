package fetcher

import (
	"context"
	"time"
)

// Response is the raw outcome of a single GET.
type Response struct {
	Body       []byte
	StatusCode int
	Elapsed    time.Duration
}

// Fetcher defines the interface for downloading remote content.
type Fetcher interface {
	// Fetch issues a single GET and returns the full response body.
	// Non-2xx statuses and transport failures are errors; there is no
	// retry.
	Fetch(ctx context.Context, url string) (*Response, error)
}
