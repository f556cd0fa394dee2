// Package cmd provides the spider CLI commands: a persistent
// --config/--debug flag pair and one subcommand per lifecycle stage.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/internal/config"
	"github.com/frejajensen9/web-based-search-engine-24/internal/logx"
)

var (
	configPath string
	debugMode  bool
	appConfig  *config.AppConfig
	logger     *slog.Logger
)

// NewRootCmd creates the root command for the spider CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spider",
		Short: "Bounded crawler and phrase-aware search engine",
		Long: `spider crawls a seed URL into a persistent positional inverted
index and serves TF-IDF/phrase-gated search over the result.`,
		PersistentPreRunE: loadConfigAndLogger,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (defaults to ./spider.yaml, then ~/.config/spider/spider.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug-level logging")

	cmd.AddCommand(newCrawlCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}

func loadConfigAndLogger(*cobra.Command, []string) error {
	var cfg *config.AppConfig
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	appConfig = cfg
	logger = logx.Setup(logx.Config{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON})
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
