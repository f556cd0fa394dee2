// Package crawler implements bounded BFS frontier expansion, orchestrating
// the Fetcher, HtmlExtractor, tokenizer, and index writer borrowed for the
// duration of one crawl session. Links are filtered to the http/https
// schemes only; crawling is not restricted to the seed's host.
package crawler

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/htmlx"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/metrics"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

// Stats summarizes one crawl session, for the CLI.
type Stats struct {
	Seed         string
	PagesIndexed int
	PagesSkipped int
	EdgesRecorded int
}

// Crawler drives a single bounded BFS crawl per Crawl call.
type Crawler struct {
	Fetcher    fetch.Fetcher
	Extractor  htmlx.Extractor
	Stopwords  text.Stopwords
	Logger     *slog.Logger
	Collectors *metrics.Collectors
}

// New builds a Crawler with the given collaborators. collectors may be
// nil, in which case crawl activity is not instrumented.
func New(fetcher fetch.Fetcher, extractor htmlx.Extractor, stop text.Stopwords, logger *slog.Logger, collectors *metrics.Collectors) *Crawler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crawler{Fetcher: fetcher, Extractor: extractor, Stopwords: stop, Logger: logger, Collectors: collectors}
}

// Crawl expands a bounded BFS from seedURL against idx, committing once
// at the end. A URL already present in idx's URL→docID mapping (from a
// prior, already-committed crawl) is neither fetched nor reallocated a
// docID, so re-running Crawl against an already-indexed seed is a no-op.
func (c *Crawler) Crawl(ctx context.Context, idx *index.Index, seedURL string, maxPages int) (Stats, error) {
	start := time.Now()
	stats := Stats{Seed: seedURL}
	if maxPages <= 0 {
		return stats, nil
	}

	sess := idx.BeginSession()

	frontier := []string{seedURL}
	visited := map[string]bool{seedURL: true}
	indexed := 0

	for len(frontier) > 0 && indexed < maxPages {
		select {
		case <-ctx.Done():
			frontier = nil
			continue
		default:
		}

		current := frontier[0]
		frontier = frontier[1:]

		if _, known := idx.DocIDForURL(current); known {
			c.Logger.Debug("crawl: already indexed, skipping re-crawl", "url", current)
			continue
		}

		base, err := url.Parse(current)
		if err != nil {
			c.Logger.Warn("crawl: unparseable URL, skipping", "url", current, "error", err)
			stats.PagesSkipped++
			continue
		}

		res, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			c.Logger.Warn("crawl: fetch failed, skipping", "url", current, "error", err)
			stats.PagesSkipped++
			c.observeFetch("error")
			continue
		}
		c.observeFetch("ok")

		docID := sess.AllocateDocID(current)
		indexed++
		if c.Collectors != nil {
			c.Collectors.PagesIndexedTotal.Inc()
		}

		page, err := c.Extractor.Extract(base, res.Body)
		if err != nil {
			c.Logger.Warn("crawl: extract failed, page indexed with no links or body", "url", current, "error", err)
		} else {
			for _, link := range page.Links {
				linkURL, err := url.Parse(link)
				if err != nil || (linkURL.Scheme != "http" && linkURL.Scheme != "https") {
					continue
				}
				sess.AddEdge(docID, link)
				stats.EdgesRecorded++
				if c.Collectors != nil {
					c.Collectors.EdgesRecordedTotal.Inc()
				}
				if !visited[link] {
					visited[link] = true
					frontier = append(frontier, link)
				}
			}

			sess.SetTitle(docID, page.Title)
			if page.Body != "" {
				sess.IndexBody(docID, text.Tokenize(page.Body, c.Stopwords))
			}
		}
	}

	stats.PagesIndexed = indexed
	err := sess.Commit()
	if c.Collectors != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.Collectors.CommitsTotal.WithLabelValues(outcome).Inc()
		c.Collectors.CrawlDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return stats, err
	}
	return stats, nil
}

func (c *Crawler) observeFetch(outcome string) {
	if c.Collectors != nil {
		c.Collectors.PagesFetchedTotal.WithLabelValues(outcome).Inc()
	}
}
