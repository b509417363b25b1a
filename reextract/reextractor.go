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

package reextract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/storage"
)

// Config holds configuration for a re-extraction run.
type Config struct {
	// BatchSize is the number of articles to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of articles)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for each batch write
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
	}
}

// Stats summarizes a completed run.
type Stats struct {
	Processed int
	Changed   int
	Elapsed   time.Duration
}

// Reextractor orchestrates re-extraction of every stored article.
type Reextractor struct {
	repo      storage.ArticleRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *ArticleIterator
	logger    *slog.Logger
}

// NewReextractor creates a new reextractor.
// progress: where to write progress output (typically os.Stderr)
func NewReextractor(repo storage.ArticleRepository, extractor *extract.Extractor, config *Config, progress io.Writer) (*Reextractor, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reextractor{
		repo:      repo,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(repo, extractor, config.MaxRetries, config.RetryDelay),
		iterator:  NewArticleIterator(repo, config.BatchSize),
		logger:    slog.Default(),
	}, nil
}

// Run re-enriches every stored article and writes back the changed ones.
func (r *Reextractor) Run(ctx context.Context) (*Stats, error) {
	total, err := r.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	stats := &Stats{}
	if total == 0 {
		fmt.Fprintf(r.progress, "No articles found in store (0 articles)\n")
		return stats, nil
	}

	fmt.Fprintf(r.progress, "Starting re-extraction of %d articles (batch size: %d)\n",
		total, r.iterator.batchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	err = r.iterator.ForEach(ctx, func(articles []*core.Article) error {
		changed, err := r.processor.Process(ctx, articles)
		if err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}
		stats.Processed += len(articles)
		stats.Changed += changed
		tracker.Add(len(articles), changed)
		return nil
	})
	if err != nil {
		return stats, err
	}

	tracker.Finish()
	stats.Elapsed = tracker.Elapsed()
	r.logger.Info("re-extraction complete",
		"processed", stats.Processed,
		"changed", stats.Changed,
		"elapsed", stats.Elapsed.Round(time.Millisecond))

	return stats, nil
}
