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

package badger

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/storage"
)

const (
	conflictRetries = 8
	conflictBackoff = 2 * time.Millisecond
)

// ArticleRepository implements storage.ArticleRepository for BadgerDB.
//
// Each article is stored under its GUID and indexed by publication date,
// topic and entity. Upsert writes every article in its own transaction, so
// one failing article never rolls back another.
type ArticleRepository struct {
	backend *Backend
	now     func() time.Time
}

var _ storage.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a new ArticleRepository.
// The repository takes ownership of the backend and closes it on Close.
func NewArticleRepository(backend *Backend) *ArticleRepository {
	return &ArticleRepository{
		backend: backend,
		now:     time.Now,
	}
}

// Close closes the underlying backend.
func (r *ArticleRepository) Close() error {
	return r.backend.Close()
}

// Upsert writes articles keyed by GUID.
func (r *ArticleRepository) Upsert(ctx context.Context, articles ...*core.Article) (*storage.BulkResult, error) {
	result := &storage.BulkResult{}
	now := r.now().UTC()

	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			result.Fail(i, guidOf(article), err)
			continue
		}
		if err := core.ValidateArticle(article); err != nil {
			result.Fail(i, guidOf(article), err)
			continue
		}

		var inserted bool
		err := storage.RetryWithBackoff(ctx, func() error {
			var err error
			inserted, err = r.upsertOne(article, now)
			if errors.Is(err, badger.ErrConflict) {
				return err
			}
			return storage.Permanent(err)
		}, conflictRetries, conflictBackoff)
		if err != nil {
			r.backend.logger.Warn("article not written", "guid", article.GUID, "err", err)
			result.Fail(i, article.GUID, err)
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Replaced++
		}
	}

	return result, result.Err()
}

// upsertOne replaces or inserts one article and its index entries.
func (r *ArticleRepository) upsertOne(article *core.Article, now time.Time) (bool, error) {
	var stored *core.Article
	inserted := false

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeArticleKey(article.GUID)

		old, err := readArticle(tx, key)
		if err != nil {
			return err
		}

		stored = article.Clone()
		stored.UpdatedAt = now
		if old == nil {
			inserted = true
			stored.CreatedAt = now
		} else {
			stored.CreatedAt = old.CreatedAt
			if err := deleteIndexes(tx, old); err != nil {
				return err
			}
		}

		value, err := storage.MarshalArticle(stored)
		if err != nil {
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}
		if err := setIndexes(tx, stored); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return false, err
	}

	article.CreatedAt = stored.CreatedAt
	article.UpdatedAt = stored.UpdatedAt
	return inserted, nil
}

// Query returns one page of matching articles, newest first.
func (r *ArticleRepository) Query(ctx context.Context, q storage.Query) (*storage.QueryResult, error) {
	q = q.Normalize()
	var matches []*core.Article

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		candidates, err := candidateGUIDs(tx, q.Filter)
		if err != nil {
			return err
		}
		if candidates != nil {
			matches, err = matchCandidates(ctx, tx, candidates, q.Filter)
			return err
		}
		matches, err = scanByDate(ctx, tx, q.Filter)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	return storage.Paginate(q, matches), nil
}

// Get retrieves a single article by GUID.
func (r *ArticleRepository) Get(ctx context.Context, guid string) (*core.Article, error) {
	var result *core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readArticle(tx, makeArticleKey(guid))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// Count returns the number of stored articles.
func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articlePrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// candidateGUIDs narrows the search using the topic and entity indexes.
// Returns nil when the filter uses neither.
func candidateGUIDs(tx *badger.Txn, f storage.Filter) (map[string]struct{}, error) {
	var result map[string]struct{}

	for _, field := range []struct {
		prefix string
		terms  []string
	}{
		{articleTopicPrefix, f.Topics},
		{articleEntityPrefix, f.Entities},
	} {
		if len(field.terms) == 0 {
			continue
		}
		union := make(map[string]struct{})
		for _, term := range field.terms {
			if err := collectTermGUIDs(tx, field.prefix, term, union); err != nil {
				return nil, err
			}
		}
		if result == nil {
			result = union
			continue
		}
		for guid := range result {
			if _, ok := union[guid]; !ok {
				delete(result, guid)
			}
		}
	}

	return result, nil
}

// collectTermGUIDs adds every guid indexed under term to out.
func collectTermGUIDs(tx *badger.Txn, prefix, term string, out map[string]struct{}) error {
	startKey := makePartialTermKey(prefix, term)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = startKey
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		out[guidFromIndexKey(iter.Item().Key(), prefix)] = struct{}{}
	}
	return nil
}

// matchCandidates loads candidate articles, applies the full filter and
// orders the matches like the date index.
func matchCandidates(ctx context.Context, tx *badger.Txn, candidates map[string]struct{}, f storage.Filter) ([]*core.Article, error) {
	var matches []*core.Article
	for guid := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		article, err := readArticle(tx, makeArticleKey(guid))
		if err != nil {
			return nil, err
		}
		if article != nil && f.Matches(article) {
			matches = append(matches, article)
		}
	}
	slices.SortFunc(matches, compareNewestFirst)
	return matches, nil
}

// scanByDate walks the date index from newest to oldest within the filter's
// date bounds.
func scanByDate(ctx context.Context, tx *badger.Txn, f storage.Filter) ([]*core.Article, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	prefix := []byte(articleDatePrefix + ":")
	var lower uint64
	if !f.Start.IsZero() {
		lower = sortableMicros(f.Start)
	}

	var matches []*core.Article
	for iter.Seek(dateKeyUpperBound(f.End)); iter.ValidForPrefix(prefix); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := iter.Item().Key()
		if !f.Start.IsZero() && pubDateFromIndexKey(key) < lower {
			break
		}

		article, err := readArticle(tx, makeArticleKey(guidFromIndexKey(key, articleDatePrefix)))
		if err != nil {
			return nil, err
		}
		// Matches re-checks the bounds at full precision.
		if article != nil && f.Matches(article) {
			matches = append(matches, article)
		}
	}
	return matches, nil
}

// compareNewestFirst orders by PubDate descending, then GUID descending,
// which is the reverse of date index order.
func compareNewestFirst(a, b *core.Article) int {
	if c := cmp.Compare(sortableMicros(b.PubDate), sortableMicros(a.PubDate)); c != 0 {
		return c
	}
	return bytes.Compare([]byte(b.GUID), []byte(a.GUID))
}

// Helper functions

// readArticle reads an article from the transaction.
// Returns nil without error when the key doesn't exist.
func readArticle(tx *badger.Txn, key []byte) (*core.Article, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var article *core.Article
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		article, unmarshalErr = storage.UnmarshalArticle(val)
		return unmarshalErr
	})
	return article, err
}

// setIndexes adds date, topic and entity index entries for an article.
func setIndexes(tx *badger.Txn, article *core.Article) error {
	for _, key := range indexKeys(article) {
		if err := tx.Set(key, nil); err != nil {
			return err
		}
	}
	return nil
}

// deleteIndexes removes the index entries of a previously stored article.
func deleteIndexes(tx *badger.Txn, article *core.Article) error {
	for _, key := range indexKeys(article) {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func indexKeys(article *core.Article) [][]byte {
	keys := [][]byte{makeArticleDateKey(article.PubDate, article.GUID)}
	for _, topic := range article.Topics {
		keys = append(keys, makeTermKey(articleTopicPrefix, topic, article.GUID))
	}
	for _, entity := range article.Entities {
		keys = append(keys, makeTermKey(articleEntityPrefix, entity, article.GUID))
	}
	return keys
}

func guidOf(article *core.Article) string {
	if article == nil {
		return ""
	}
	return article.GUID
}
