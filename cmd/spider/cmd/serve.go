package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/httpapi"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/metrics"
	"github.com/frejajensen9/web-based-search-engine-24/internal/search"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query interface over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = appConfig.Server.Addr
			}

			s, err := store.Open(appConfig.Store.Path)
			if err != nil {
				return fmt.Errorf("serve: open store: %w", err)
			}
			defer s.Close()

			idx, err := index.Open(s)
			if err != nil {
				return fmt.Errorf("serve: open index: %w", err)
			}

			stop, err := text.LoadStopwords(appConfig.Text.StopwordsPath)
			if err != nil {
				logger.Warn("stop-word file unreadable, proceeding with empty set", "path", appConfig.Text.StopwordsPath, "error", err)
				stop = text.Stopwords{}
			}

			fetcher := fetch.NewHTTPFetcher(appConfig.Crawl.ConnectTimeout, appConfig.Crawl.ReadTimeout)
			engine := search.New(idx, fetcher, stop)

			reg := prometheus.NewRegistry()
			collectors := metrics.New(reg)
			mux := httpapi.NewMux(engine, collectors, reg, logger)

			logger.Info("serving query interface", "addr", addr)
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on")
	return cmd
}
