package reextract

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/storage"
)

// BatchProcessor enriches a batch of articles and writes back the ones whose
// topics or entities changed.
type BatchProcessor struct {
	repo           storage.ArticleRepository
	extractor      *extract.Extractor
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of attempts for each write
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ArticleRepository, extractor *extract.Extractor, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		extractor:      extractor,
		maxRetries:     max(maxRetries, 1),
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-enriches articles and returns how many were rewritten.
func (bp *BatchProcessor) Process(ctx context.Context, articles []*core.Article) (int, error) {
	changed := make([]*core.Article, 0, len(articles))
	for _, a := range articles {
		topics, entities := a.Topics, a.Entities
		bp.extractor.Enrich(a)
		if !slices.Equal(topics, a.Topics) || !slices.Equal(entities, a.Entities) {
			changed = append(changed, a)
		}
	}
	if len(changed) == 0 {
		return 0, nil
	}

	var result *storage.BulkResult
	err := storage.RetryWithBackoff(ctx, func() error {
		var err error
		result, err = bp.repo.Upsert(ctx, changed...)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return 0, fmt.Errorf("failed to update articles after %d attempts: %w", bp.maxRetries, err)
	}

	return result.Written(), nil
}
