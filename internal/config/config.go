// Package config loads the application's YAML configuration: load from
// file, fall back to defaults, write defaults if no config file exists.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CrawlConfig configures the crawler.
type CrawlConfig struct {
	SeedURL         string        `yaml:"seed_url"`
	MaxPages        int           `yaml:"max_pages"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
}

// StoreConfig configures the persistent index store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// TextConfig configures tokenization.
type TextConfig struct {
	StopwordsPath string `yaml:"stopwords_path"`
}

// ServerConfig configures the HTTP query surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Crawl   CrawlConfig   `yaml:"crawl"`
	Store   StoreConfig   `yaml:"store"`
	Text    TextConfig    `yaml:"text"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load reads a config from path. If the file does not exist, returns
// defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./spider.yaml first, then ~/.config/spider/spider.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "spider.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "spider", "spider.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Crawl: CrawlConfig{
			MaxPages:       300,
			ConnectTimeout: 5 * time.Second,
			ReadTimeout:    5 * time.Second,
		},
		Store: StoreConfig{Path: "spider.db"},
		Text:  TextConfig{StopwordsPath: "stopwords.txt"},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Crawl.MaxPages == 0 {
		cfg.Crawl.MaxPages = 300
	}
	if cfg.Crawl.ConnectTimeout == 0 {
		cfg.Crawl.ConnectTimeout = 5 * time.Second
	}
	if cfg.Crawl.ReadTimeout == 0 {
		cfg.Crawl.ReadTimeout = 5 * time.Second
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "spider.db"
	}
	if cfg.Text.StopwordsPath == "" {
		cfg.Text.StopwordsPath = "stopwords.txt"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
