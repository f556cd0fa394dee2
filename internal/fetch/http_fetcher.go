package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// HTTPFetcher fetches pages over HTTP/HTTPS with a bounded connect and
// read timeout and a capped redirect chain.
type HTTPFetcher struct {
	client *http.Client
}

// MaxRedirects is the maximum number of redirects HTTPFetcher will follow
// before giving up.
const MaxRedirects = 5

// NewHTTPFetcher builds a Fetcher with the given connect and read
// timeouts.
func NewHTTPFetcher(connectTimeout, readTimeout time.Duration) *HTTPFetcher {
	dialer := &net.Dialer{Timeout: connectTimeout}
	transport := &http.Transport{
		DialContext: dialer.DialContext,
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   connectTimeout + readTimeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > MaxRedirects {
				return fmt.Errorf("fetch: stopped after %d redirects", MaxRedirects)
			}
			return nil
		},
	}
	return &HTTPFetcher{client: client}
}

// Fetch downloads url's body. A non-2xx status or a timeout surfaces as
// an error; the crawler treats any error here as "page unavailable" and
// skips the page.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: build request for %s: %w", url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("fetch: %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: read body of %s: %w", url, err)
	}

	size := resp.ContentLength
	if size < 0 {
		size = int64(len(body))
	}

	lastModified, _ := http.ParseTime(resp.Header.Get("Last-Modified"))

	return Result{
		Body:          body,
		LastModified:  lastModified,
		ContentLength: size,
	}, nil
}

// Stat resolves live last-modified time and content length for url via a
// HEAD request, used at report/query time. On any failure it returns the
// zero time and 0 — callers render those as "Unknown" and 0 bytes.
func (f *HTTPFetcher) Stat(ctx context.Context, url string) (time.Time, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return time.Time{}, 0, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return time.Time{}, 0, err
	}
	defer resp.Body.Close()

	lastModified, _ := http.ParseTime(resp.Header.Get("Last-Modified"))
	size := resp.ContentLength
	if size < 0 {
		size = 0
	}
	return lastModified, size, nil
}
