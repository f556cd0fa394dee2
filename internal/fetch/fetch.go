// Package fetch provides the Fetcher capability: something that turns a
// URL into body bytes plus live metadata, on a bounded timeout budget.
package fetch

import (
	"context"
	"time"
)

// Result is a successfully fetched page.
type Result struct {
	Body          []byte
	LastModified  time.Time
	ContentLength int64
}

// Fetcher fetches page bodies. Implementations must apply both a connect
// and a read timeout and follow redirects up to a bounded limit.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Result, error)
	// Stat resolves live last-modified time and content length for url
	// without necessarily re-fetching the body, used at report/query time
	// to reflect the live origin rather than a stale crawl-time snapshot.
	Stat(ctx context.Context, url string) (lastModified time.Time, size int64, err error)
}
