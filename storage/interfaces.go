package storage

import (
	"context"

	"github.com/poiesic/gleaner/core"
)

// ArticleRepository provides operations for managing articles.
// Implementations must be thread-safe and support concurrent access.
type ArticleRepository interface {
	// Upsert writes articles keyed by GUID. An existing article with the same
	// GUID has its field set replaced; CreatedAt is preserved and UpdatedAt is
	// set. A new GUID is inserted with both timestamps set.
	// Articles are written independently: a failing article does not prevent
	// the others from being written. If any article fails, the returned error
	// wraps ErrBulkWriteFailed and the BulkResult describes the outcome.
	// Timestamps are written back to the passed articles.
	Upsert(ctx context.Context, articles ...*core.Article) (*BulkResult, error)

	// Query returns one page of articles matching q.Filter, ordered by PubDate
	// descending, together with the unpaginated match count.
	// q is normalized before use.
	Query(ctx context.Context, q Query) (*QueryResult, error)

	// Get retrieves a single article by GUID.
	// Returns ErrNotFound if the article doesn't exist.
	Get(ctx context.Context, guid string) (*core.Article, error)

	// Count returns the number of stored articles.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
