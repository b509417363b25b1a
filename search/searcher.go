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

package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/gleaner/storage"
)

// Searcher answers filtered, paginated article searches.
type Searcher struct {
	repository storage.ArticleRepository
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(repository storage.ArticleRepository, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		repository: repository,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search parses params and returns the requested page of matching articles,
// newest first. Malformed parameters yield ErrInvalidQueryParameter; a
// repository failure yields ErrSearchFailed.
func (s *Searcher) Search(ctx context.Context, params Params) (*storage.QueryResult, error) {
	q, err := params.Query()
	if err != nil {
		s.logger.Debug("rejecting search", "err", err)
		return nil, err
	}
	return s.Query(ctx, q)
}

// Query runs an already built query.
func (s *Searcher) Query(ctx context.Context, q storage.Query) (*storage.QueryResult, error) {
	q = q.Normalize()
	result, err := s.repository.Query(ctx, q)
	if err != nil {
		s.logger.Error("error querying articles", "title", q.Title, "page", q.Page, "limit", q.Limit, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	s.logger.Debug("search complete", "total", result.Total, "returned", len(result.Articles),
		"page", result.Page, "limit", result.Limit)
	return result, nil
}
