package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/search"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a query against the persistent index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(appConfig.Store.Path)
			if err != nil {
				return fmt.Errorf("search: open store: %w", err)
			}
			defer s.Close()

			idx, err := index.Open(s)
			if err != nil {
				return fmt.Errorf("search: open index: %w", err)
			}

			stop, err := text.LoadStopwords(appConfig.Text.StopwordsPath)
			if err != nil {
				logger.Warn("stop-word file unreadable, proceeding with empty set", "path", appConfig.Text.StopwordsPath, "error", err)
				stop = text.Stopwords{}
			}

			fetcher := fetch.NewHTTPFetcher(appConfig.Crawl.ConnectTimeout, appConfig.Crawl.ReadTimeout)
			engine := search.New(idx, fetcher, stop)

			results, err := engine.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			for i, r := range results {
				fmt.Printf("%2d. [%d] %s\n    %s\n    %s | %d bytes\n    keywords: %s\n",
					i+1, r.NormalizedScore, r.Title, r.URL, r.LastModified, r.Size, r.Keywords)
			}
			return nil
		},
	}
	return cmd
}
