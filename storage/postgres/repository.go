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

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/storage"
)

const (
	pingAttempts = 5
	pingBackoff  = 200 * time.Millisecond
)

// Repository implements storage.ArticleRepository for PostgreSQL.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

var _ storage.ArticleRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Open connects to dsn, waits for the server to answer and ensures the schema.
func Open(ctx context.Context, dsn string, opts ...Option) (*Repository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = storage.RetryWithBackoff(ctx, func() error {
		return db.PingContext(ctx)
	}, pingAttempts, pingBackoff)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	r := NewRepository(db, opts...)
	if err := r.Ensure(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewRepository wraps an open database handle. The repository closes db on Close.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	r := &Repository{
		db:     db,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ensure creates the articles table and its indexes if they don't exist.
func (r *Repository) Ensure(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Close closes the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Upsert writes each article with its own statement so one failure does not
// affect the rest of the batch.
func (r *Repository) Upsert(ctx context.Context, articles ...*core.Article) (*storage.BulkResult, error) {
	result := &storage.BulkResult{}
	now := r.now().UTC()

	for i, a := range articles {
		if err := ctx.Err(); err != nil {
			result.Fail(i, guidOf(a), err)
			continue
		}
		if err := core.ValidateArticle(a); err != nil {
			result.Fail(i, guidOf(a), err)
			continue
		}

		var inserted bool
		var createdAt, updatedAt time.Time
		err := r.db.QueryRowContext(ctx, upsertStatement,
			a.GUID, a.Title, a.Description, a.PubDate.UTC(), a.SourceURL,
			pq.Array(nonNil(a.Topics)), pq.Array(nonNil(a.Entities)), pq.Array(nonNil(a.Author)),
			now,
		).Scan(&inserted, &createdAt, &updatedAt)
		if err != nil {
			r.logger.Warn("article not written", "guid", a.GUID, "err", err)
			result.Fail(i, a.GUID, err)
			continue
		}

		a.CreatedAt, a.UpdatedAt = createdAt, updatedAt
		if inserted {
			result.Inserted++
		} else {
			result.Replaced++
		}
	}

	return result, result.Err()
}

// Query returns one page of matching articles, newest first.
func (r *Repository) Query(ctx context.Context, q storage.Query) (*storage.QueryResult, error) {
	q = q.Normalize()
	where, args := buildWhere(q.Filter)

	result := &storage.QueryResult{
		Articles: []*core.Article{},
		Page:     q.Page,
		Limit:    q.Limit,
	}

	countQuery := "SELECT count(*) FROM " + tableName + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&result.Total); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if result.Total == 0 || q.Skip() >= result.Total {
		return result, nil
	}

	pageQuery := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY pub_date DESC, guid DESC LIMIT $%d OFFSET $%d",
		articleColumns, tableName, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, pageQuery, append(args, q.Limit, q.Skip())...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		result.Articles = append(result.Articles, a)
	}
	return result, rows.Err()
}

// Get retrieves a single article by GUID.
func (r *Repository) Get(ctx context.Context, guid string) (*core.Article, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM "+tableName+" WHERE guid = $1", guid)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	return a, err
}

// Count returns the number of stored articles.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM "+tableName).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*core.Article, error) {
	var a core.Article
	err := s.Scan(
		&a.GUID, &a.Title, &a.Description, &a.PubDate, &a.SourceURL,
		pq.Array(&a.Topics), pq.Array(&a.Entities), pq.Array(&a.Author),
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func guidOf(a *core.Article) string {
	if a == nil {
		return ""
	}
	return a.GUID
}
