package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/internal/crawler"
	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/htmlx"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/metrics"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

func newCrawlCmd() *cobra.Command {
	var seed string
	var maxPages int

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl a seed URL into the persistent index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == "" {
				seed = appConfig.Crawl.SeedURL
			}
			if maxPages <= 0 {
				maxPages = appConfig.Crawl.MaxPages
			}
			if seed == "" {
				return fmt.Errorf("crawl: no seed URL given (use --seed or set crawl.seed_url)")
			}

			s, err := store.Open(appConfig.Store.Path)
			if err != nil {
				return fmt.Errorf("crawl: open store: %w", err)
			}
			defer s.Close()

			idx, err := index.Open(s)
			if err != nil {
				return fmt.Errorf("crawl: open index: %w", err)
			}

			stop, err := text.LoadStopwords(appConfig.Text.StopwordsPath)
			if err != nil {
				logger.Warn("stop-word file unreadable, proceeding with empty set", "path", appConfig.Text.StopwordsPath, "error", err)
				stop = text.Stopwords{}
			}

			fetcher := fetch.NewHTTPFetcher(appConfig.Crawl.ConnectTimeout, appConfig.Crawl.ReadTimeout)
			reg := prometheus.NewRegistry()
			collectors := metrics.New(reg)
			c := crawler.New(fetcher, htmlx.HTMLExtractor{}, stop, logger, collectors)

			stats, err := c.Crawl(cmd.Context(), idx, seed, maxPages)
			if err != nil {
				return fmt.Errorf("crawl: %w", err)
			}
			logger.Info("crawl complete",
				"seed", stats.Seed,
				"pages_indexed", stats.PagesIndexed,
				"pages_skipped", stats.PagesSkipped,
				"edges_recorded", stats.EdgesRecorded,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "seed URL to crawl from")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum pages to index this session")
	return cmd
}
