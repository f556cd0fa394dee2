package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/report"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
)

func newReportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the crawl report file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = "spider_result.txt"
			}

			s, err := store.Open(appConfig.Store.Path)
			if err != nil {
				return fmt.Errorf("report: open store: %w", err)
			}
			defer s.Close()

			idx, err := index.Open(s)
			if err != nil {
				return fmt.Errorf("report: open index: %w", err)
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("report: create %s: %w", outputPath, err)
			}
			defer out.Close()

			fetcher := fetch.NewHTTPFetcher(appConfig.Crawl.ConnectTimeout, appConfig.Crawl.ReadTimeout)
			if err := report.Write(cmd.Context(), out, idx, fetcher); err != nil {
				return fmt.Errorf("report: write: %w", err)
			}
			logger.Info("crawl report written", "path", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "out", "", "output file path (default spider_result.txt)")
	return cmd
}
