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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/poiesic/gleaner/config"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/feed"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "gleaner",
		Usage: "Feed ingestion, enrichment and search service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"GLEANER_CONFIG"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP service and the fetch schedule",
				Action: serveCommand,
				Flags: append(append(storeFlags(), ingestFlags()...),
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "HTTP port (ignored when --listen is set)",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "HTTP listen address",
					},
					&cli.BoolFlag{
						Name:  "fetch-on-start",
						Usage: "Run one fetch immediately instead of waiting for the schedule",
					},
				),
			},
			{
				Name:   "fetch",
				Usage:  "Fetch all feeds once and store the articles",
				Action: fetchCommand,
				Flags:  append(storeFlags(), ingestFlags()...),
			},
			{
				Name:   "reextract",
				Usage:  "Re-run topic and entity extraction over stored articles",
				Action: reextractCommand,
				Flags: append(storeFlags(),
					&cli.IntFlag{Name: "batch-size", Usage: "Articles per batch", Value: 100},
					&cli.IntFlag{Name: "max-retries", Usage: "Attempts per batch write", Value: 3},
					taggerFlag(),
				),
			},
			{
				Name:   "search",
				Usage:  "Search stored articles",
				Action: searchCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{Name: "title", Usage: "Case-insensitive title substring"},
					&cli.StringFlag{Name: "start-date", Usage: "Earliest publication date (2006-01-02 or RFC 3339)"},
					&cli.StringFlag{Name: "end-date", Usage: "Latest publication date, inclusive"},
					&cli.StringFlag{Name: "topics", Usage: "Comma separated topics, any of"},
					&cli.StringFlag{Name: "entities", Usage: "Comma separated entities, any of"},
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.IntFlag{Name: "limit", Usage: "Articles per page", Value: 10},
					&cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"},
				),
			},
		},
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "store",
			Usage:   "Article store driver (badger, memory, postgres)",
			EnvVars: []string{"STORE_DRIVER"},
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			EnvVars: []string{"STORE_PATH"},
		},
		&cli.StringFlag{
			Name:    "dsn",
			Usage:   "PostgreSQL connection string (selects the postgres driver)",
			EnvVars: []string{"DATABASE_URL"},
		},
	}
}

func ingestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "feeds",
			Usage:   "Comma separated feed URLs",
			EnvVars: []string{"RSS_FEED_URLS"},
		},
		&cli.IntFlag{
			Name:    "interval",
			Usage:   "Fetch interval in minutes",
			EnvVars: []string{"FETCH_INTERVAL_MINUTES"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-feed request timeout",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of feeds fetched concurrently",
		},
		taggerFlag(),
	}
}

func taggerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "tagger",
		Usage:   "Extraction tagger (prose, rules)",
		EnvVars: []string{"EXTRACT_TAGGER"},
	}
}

// loadConfig builds the configuration from defaults, the optional config
// file and then any flags or environment variables that were set.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("feeds") {
		cfg.Feeds = config.SplitList(c.String("feeds"))
	}
	if c.IsSet("interval") {
		cfg.FetchIntervalMinutes = c.Int("interval")
	}
	if c.IsSet("timeout") {
		cfg.FetchTimeout = c.Duration("timeout")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("tagger") {
		cfg.Tagger = c.String("tagger")
	}
	if c.IsSet("listen") {
		cfg.ListenAddr = c.String("listen")
	} else if c.IsSet("port") {
		cfg.ListenAddr = fmt.Sprintf(":%d", c.Int("port"))
	}
	if c.IsSet("dsn") {
		cfg.Store.DSN = c.String("dsn")
		cfg.Store.Driver = config.DriverPostgres
	}
	if c.IsSet("db") {
		cfg.Store.Path = c.String("db")
		cfg.Store.Driver = config.DriverBadger
	}
	if c.IsSet("store") {
		cfg.Store.Driver = c.String("store")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newFeedClient(cfg *config.Config) *feed.Client {
	return feed.NewClient(feed.WithTimeout(cfg.FetchTimeout), feed.WithLogger(slog.Default()))
}

// newExtractor builds the extractor for cfg.Tagger. The prose tagger keeps
// the rule tagger for organizations.
func newExtractor(cfg *config.Config) *extract.Extractor {
	logger := slog.Default().With("component", "extract")
	if cfg.Tagger == config.TaggerRules {
		return extract.New(extract.WithLogger(logger))
	}
	pt := extract.NewProseTagger(extract.NewRuleTagger())
	return extract.New(extract.WithTagger(pt), extract.WithRecognizer(pt), extract.WithLogger(logger))
}

func describeStore(store config.StoreConfig) string {
	switch store.Driver {
	case config.DriverBadger:
		return "badger " + store.Path
	default:
		return store.Driver
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := c.String("log-level")
	if !c.IsSet("log-level") && c.String("config") != "" {
		if cfg, err := config.Load(c.String("config")); err == nil {
			levelStr = cfg.LogLevel
		}
	}

	level, err := config.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
