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

	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/storage"
)

const (
	// DefaultBatchSize is the default number of articles to fetch in each batch
	DefaultBatchSize = 100
)

// ArticleIterator iterates over all stored articles in batches, newest first.
type ArticleIterator struct {
	repo      storage.ArticleRepository
	batchSize int
}

// NewArticleIterator creates a new article iterator.
// batchSize: number of articles to fetch in each batch (must be > 0)
func NewArticleIterator(repo storage.ArticleRepository, batchSize int) *ArticleIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ArticleIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach calls fn with each page of articles until the store is exhausted.
// Iteration stops on the first error from fn or the repository.
// Context cancellation is checked between batches.
func (it *ArticleIterator) ForEach(ctx context.Context, fn func([]*core.Article) error) error {
	for page := 1; ; page++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := it.repo.Query(ctx, storage.Query{Page: page, Limit: it.batchSize})
		if err != nil {
			return err
		}
		if len(result.Articles) == 0 {
			return nil
		}

		if err := fn(result.Articles); err != nil {
			return err
		}

		if page*it.batchSize >= result.Total {
			return nil
		}
	}
}
