// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverBadger   = "badger"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Extraction taggers.
const (
	TaggerProse = "prose"
	TaggerRules = "rules"
)

// Configuration validation errors.
var (
	ErrInvalidInterval = errors.New("fetch_interval_minutes must be at least 1")
	ErrInvalidTimeout  = errors.New("fetch_timeout must be positive")
	ErrInvalidWorkers  = errors.New("workers must be at least 1")
	ErrMissingListen   = errors.New("listen_addr is required")
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
	ErrInvalidDriver   = errors.New("store.driver must be one of: badger, memory, postgres")
	ErrMissingPath     = errors.New("store.path is required for the badger driver")
	ErrMissingDSN      = errors.New("store.dsn is required for the postgres driver")
	ErrInvalidTagger   = errors.New("tagger must be one of: prose, rules")
)

// Config holds the service configuration.
type Config struct {
	// Feeds lists the source feed URLs. Malformed URLs are not rejected here;
	// each run reports them as failed sources.
	Feeds []string `yaml:"feeds"`

	// FetchIntervalMinutes is the schedule interval.
	// Default: 60
	FetchIntervalMinutes int `yaml:"fetch_interval_minutes"`

	// FetchTimeout bounds each feed request.
	// Default: 20s
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// Workers is the number of feeds fetched concurrently.
	// Default: runtime.NumCPU()
	Workers int `yaml:"workers"`

	// ListenAddr is the HTTP listen address.
	// Default: ":3000"
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Tagger selects the part-of-speech and entity capability: prose
	// (statistical model) or rules (lexicon and capitalisation rules).
	// Default: "prose"
	Tagger string `yaml:"tagger"`

	Store StoreConfig `yaml:"store"`
}

// StoreConfig selects and locates the article store.
type StoreConfig struct {
	// Driver is badger, memory or postgres.
	// Default: "badger"
	Driver string `yaml:"driver"`

	// Path is the BadgerDB directory.
	// Default: "./data/articles"
	Path string `yaml:"path"`

	// DSN is the PostgreSQL connection string.
	DSN string `yaml:"dsn"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithFeeds sets the source feed URLs.
func WithFeeds(feeds ...string) ConfigOption {
	return func(c *Config) {
		c.Feeds = feeds
	}
}

// WithFetchInterval sets the schedule interval in minutes.
func WithFetchInterval(minutes int) ConfigOption {
	return func(c *Config) {
		c.FetchIntervalMinutes = minutes
	}
}

// WithFetchTimeout sets the per-feed request timeout.
func WithFetchTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.FetchTimeout = d
	}
}

// WithWorkers sets the number of concurrent feed fetches.
func WithWorkers(n int) ConfigOption {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithListenAddr sets the HTTP listen address.
func WithListenAddr(addr string) ConfigOption {
	return func(c *Config) {
		c.ListenAddr = addr
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithTagger sets the extraction tagger.
func WithTagger(tagger string) ConfigOption {
	return func(c *Config) {
		c.Tagger = tagger
	}
}

// WithStore sets the store driver and its location. location is a directory
// for badger and a DSN for postgres; it is ignored for memory.
func WithStore(driver, location string) ConfigOption {
	return func(c *Config) {
		c.Store.Driver = driver
		switch driver {
		case DriverPostgres:
			c.Store.DSN = location
		case DriverBadger:
			c.Store.Path = location
		}
	}
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() *Config {
	return &Config{
		Feeds:                []string{},
		FetchIntervalMinutes: 60,
		FetchTimeout:         20 * time.Second,
		Workers:              runtime.NumCPU(),
		ListenAddr:           ":3000",
		LogLevel:             "info",
		Tagger:               TaggerProse,
		Store: StoreConfig{
			Driver: DriverBadger,
			Path:   "./data/articles",
		},
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Normalize trims feed URLs, drops blank ones and lowercases enumerations.
func (c *Config) Normalize() {
	feeds := make([]string, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		if f = strings.TrimSpace(f); f != "" {
			feeds = append(feeds, f)
		}
	}
	c.Feeds = feeds
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Tagger = strings.ToLower(strings.TrimSpace(c.Tagger))
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
}

// Validate checks that the configuration is usable.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if c.FetchIntervalMinutes < 1 {
		return ErrInvalidInterval
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.ListenAddr == "" {
		return ErrMissingListen
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Tagger != TaggerProse && c.Tagger != TaggerRules {
		return fmt.Errorf("%w: %q", ErrInvalidTagger, c.Tagger)
	}

	switch c.Store.Driver {
	case DriverBadger:
		if c.Store.Path == "" {
			return ErrMissingPath
		}
	case DriverPostgres:
		if c.Store.DSN == "" {
			return ErrMissingDSN
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.Store.Driver)
	}
	return nil
}

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}

// SplitList splits a comma separated list such as RSS_FEED_URLS.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
