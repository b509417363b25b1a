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

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/feed"
	"github.com/poiesic/gleaner/storage"
)

// Fetcher retrieves the raw articles of one source.
// Errors should be *feed.FetchError; other errors are classified by the pipeline.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]*core.Article, error)
}

// Pipeline orchestrates fetching, enrichment and storage of feed articles.
// It is safe for concurrent use.
type Pipeline struct {
	fetcher    Fetcher
	extractor  *extract.Extractor
	repository storage.ArticleRepository
	pool       *ants.Pool
	poolSize   int
	monitor    Monitor
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of sources fetched concurrently.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor to observe runs.
func WithMonitor(monitor Monitor) Option {
	return func(p *Pipeline) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		p.monitor = monitor
		return nil
	}
}

// WithClock sets the time source used for normalization and reports.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) error {
		if now != nil {
			p.now = now
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
// Call Release when the pipeline is no longer needed.
func NewPipeline(
	fetcher Fetcher,
	extractor *extract.Extractor,
	repository storage.ArticleRepository,
	opts ...Option,
) (*Pipeline, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	p := &Pipeline{
		fetcher:    fetcher,
		extractor:  extractor,
		repository: repository,
		poolSize:   max(runtime.NumCPU(), 1),
		monitor:    &noopMonitor{},
		now:        time.Now,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	// Pool is created after options so it picks up the final logger.
	pool, err := ants.NewPool(p.poolSize, ants.WithLogger(&antsLogger{logger: p.logger}))
	if err != nil {
		return nil, err
	}
	p.pool = pool

	return p, nil
}

// Run fetches every url, enriches the fetched articles and upserts them in a
// single bulk call. Per-source failures are recorded in the report and never
// abort the run. The report is returned even when storing fails; the error
// then wraps ErrStoreFailed and the repository's error.
func (p *Pipeline) Run(ctx context.Context, urls []string) (*Report, error) {
	report := &Report{
		RunID:     ulid.Make().String(),
		Articles:  []*core.Article{},
		Failures:  []SourceFailure{},
		StartedAt: p.now(),
	}
	logger := p.logger.With("run", report.RunID)
	p.monitor.Start(report.RunID, urls)
	logger.Info("ingestion run started", "sources", len(urls))

	defer func() {
		report.Duration = p.now().Sub(report.StartedAt)
		p.monitor.Finish(report)
	}()

	results := p.fetchAll(ctx, urls)
	now := p.now()
	for i, res := range results {
		url := urls[i]
		if res.err != nil {
			report.Failures = append(report.Failures, SourceFailure{
				URL:   url,
				Kind:  res.err.Kind,
				Error: res.err.Err.Error(),
			})
			logger.Warn("source failed", "url", url, "kind", res.err.Kind, "err", res.err.Err)
			continue
		}

		for _, article := range res.articles {
			if article == nil {
				report.Rejected++
				continue
			}
			core.NormalizeArticle(article, now)
			if err := core.ValidateArticle(article); err != nil {
				report.Rejected++
				logger.Debug("article rejected", "url", url, "guid", article.GUID, "err", err)
				continue
			}
			p.extractor.Enrich(article)
			report.Articles = append(report.Articles, article)
		}
	}

	if len(report.Articles) == 0 {
		report.Bulk = &storage.BulkResult{}
		logger.Info("ingestion run finished, nothing to store",
			"failures", len(report.Failures), "rejected", report.Rejected)
		return report, nil
	}

	bulk, err := p.repository.Upsert(ctx, report.Articles...)
	report.Bulk = bulk
	if bulk != nil {
		p.monitor.Stored(bulk)
	}
	if err != nil {
		logger.Error("storing articles failed", "articles", len(report.Articles), "err", err)
		return report, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	logger.Info("ingestion run finished",
		"articles", len(report.Articles),
		"inserted", bulk.Inserted,
		"replaced", bulk.Replaced,
		"failures", len(report.Failures),
		"rejected", report.Rejected)
	return report, nil
}

type fetchResult struct {
	articles []*core.Article
	err      *feed.FetchError
}

// fetchAll fetches every url on the worker pool and returns the results in
// url order. A slow or failing source does not affect its siblings.
func (p *Pipeline) fetchAll(ctx context.Context, urls []string) []fetchResult {
	results := make([]fetchResult, len(urls))
	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i] = p.fetchOne(ctx, url)
		})
		if err != nil {
			wg.Done()
			results[i] = p.failed(url, fmt.Errorf("scheduling fetch: %w", err))
		}
	}
	wg.Wait()
	return results
}

func (p *Pipeline) fetchOne(ctx context.Context, url string) (res fetchResult) {
	defer func() {
		if r := recover(); r != nil {
			res = p.failed(url, fmt.Errorf("fetcher panicked: %v", r))
		}
	}()

	articles, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return p.failed(url, err)
	}
	p.monitor.SourceFetched(url, len(articles))
	return fetchResult{articles: articles}
}

func (p *Pipeline) failed(url string, err error) fetchResult {
	fe := feed.Classify(url, err)
	p.monitor.SourceFailed(fe)
	return fetchResult{err: fe}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// antsLogger routes worker pool messages through slog.
type antsLogger struct {
	logger *slog.Logger
}

func (l *antsLogger) Printf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "ants")
}
