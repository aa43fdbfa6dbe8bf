package api

import (
	"net/http"
	"time"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second

	// Retry budget for transient server failures on safe methods.
	maxRetries   = 2
	retryBackoff = 200 * time.Millisecond
)

// newPooledTransport returns the base transport with connection pooling
// tuned for a single-backend console.
func newPooledTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}
}

// retryTransport retries idempotent requests a bounded number of times when
// the server answers 5xx. Non-idempotent methods and client errors pass
// through on the first attempt.
type retryTransport struct {
	next http.RoundTripper
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return t.next.RoundTrip(req)
	}

	var resp *http.Response
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
		resp, err = t.next.RoundTrip(req)
		if err != nil {
			continue
		}
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if attempt < maxRetries {
			resp.Body.Close()
		}
	}
	return resp, err
}
