package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(delay time.Duration) *HTTPFetcher {
	return NewHTTPFetcher(Options{
		UserAgent: "test-agent",
		Timeout:   5 * time.Second,
		MinDelay:  delay,
	})
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte("hello world"))
	}))
	defer srv.Close()

	f := newTestFetcher(time.Millisecond)
	resp, err := f.Fetch(context.Background(), srv.URL+"/page")
	require.NoError(t, err)

	assert.Equal(t, "hello world", string(resp.Body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Greater(t, resp.Elapsed, time.Duration(0))
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher(time.Millisecond)
	resp, err := f.Fetch(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchTransportFailure(t *testing.T) {
	f := newTestFetcher(time.Millisecond)
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	assert.Error(t, err)
}

func TestFetchFollowsRedirects(t *testing.T) {
	var target *httptest.Server
	target = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("final"))
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer srv.Close()

	f := newTestFetcher(time.Millisecond)
	resp, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "final", string(resp.Body))
}

func TestFetchEnforcesMinDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	delay := 100 * time.Millisecond
	f := newTestFetcher(delay)

	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	// The second request must have waited for the configured spacing.
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestFetchRateLimiterHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := newTestFetcher(time.Minute)
	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = f.Fetch(ctx, srv.URL)
	assert.Error(t, err)
}
