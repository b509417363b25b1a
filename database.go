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


package gleaner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/gleaner/config"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/feed"
	"github.com/poiesic/gleaner/ingestion"
	"github.com/poiesic/gleaner/search"
	"github.com/poiesic/gleaner/storage"
	"github.com/poiesic/gleaner/storage/badger"
	"github.com/poiesic/gleaner/storage/postgres"
)

// Database ties an article store to the components that read and write it.
type Database struct {
	repository storage.ArticleRepository
	fetcher    ingestion.Fetcher
	extractor  *extract.Extractor
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logger    *slog.Logger
	fetcher   ingestion.Fetcher
	extractor *extract.Extractor
}

// WithLogger sets the logger handed to the store and its components.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFetcher sets the fetcher used by ingestion pipelines.
// Default is a feed.Client with default settings.
func WithFetcher(fetcher ingestion.Fetcher) DatabaseOption {
	return func(o *databaseOptions) {
		o.fetcher = fetcher
	}
}

// WithExtractor sets the extractor used by ingestion pipelines.
func WithExtractor(extractor *extract.Extractor) DatabaseOption {
	return func(o *databaseOptions) {
		o.extractor = extractor
	}
}

// NewDatabase opens the store described by cfg.
func NewDatabase(ctx context.Context, cfg config.StoreConfig, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.fetcher == nil {
		options.fetcher = feed.NewClient(feed.WithLogger(options.logger))
	}
	if options.extractor == nil {
		options.extractor = extract.New(extract.WithLogger(options.logger))
	}

	repository, err := openRepository(ctx, cfg, options.logger)
	if err != nil {
		return nil, err
	}

	return &Database{
		repository: repository,
		fetcher:    options.fetcher,
		extractor:  options.extractor,
		logger:     options.logger,
	}, nil
}

func openRepository(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (storage.ArticleRepository, error) {
	switch cfg.Driver {
	case config.DriverBadger, "":
		backend, err := badger.OpenBackend(cfg.Path, false, badger.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return badger.NewArticleRepository(backend), nil
	case config.DriverMemory:
		backend, err := badger.OpenBackend("", true, badger.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return badger.NewArticleRepository(backend), nil
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg.DSN, postgres.WithLogger(logger))
	}
	return nil, fmt.Errorf("%w: %q", config.ErrInvalidDriver, cfg.Driver)
}

func (db *Database) Close() error {
	if err := db.repository.Close(); err != nil {
		db.logger.Error("error closing article repository", "err", err)
		return err
	}
	return nil
}

func (db *Database) ArticleRepository() storage.ArticleRepository {
	return db.repository
}

func (db *Database) Extractor() *extract.Extractor {
	return db.extractor
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)
	return ingestion.NewPipeline(db.fetcher, db.extractor, db.repository, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(db.logger)}, opts...)
	return search.NewSearcher(db.repository, opts...)
}
