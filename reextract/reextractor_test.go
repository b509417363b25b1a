package reextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/storage"
	"github.com/poiesic/gleaner/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T, n int) storage.ArticleRepository {
	t.Helper()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	articles := make([]*core.Article, n)
	for i := range articles {
		articles[i] = &core.Article{
			GUID:        fmt.Sprintf("article-%02d", i),
			Title:       fmt.Sprintf("Article %d", i),
			Description: "Engineers in Lisbon tested the rocket engine. The engine passed.",
			PubDate:     base.Add(time.Duration(i) * time.Hour),
			SourceURL:   fmt.Sprintf("https://news.example.com/%d", i),
			Author:      []string{core.UnknownAuthor},
			Topics:      []string{},
			Entities:    []string{},
		}
	}
	_, err = repo.Upsert(context.Background(), articles...)
	require.NoError(t, err)
	return repo
}

func TestArticleIterator_Batches(t *testing.T) {
	repo := setupRepo(t, 5)

	var sizes []int
	var guids []string
	err := NewArticleIterator(repo, 2).ForEach(context.Background(), func(articles []*core.Article) error {
		sizes = append(sizes, len(articles))
		for _, a := range articles {
			guids = append(guids, a.GUID)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, []string{"article-04", "article-03", "article-02", "article-01", "article-00"}, guids)
}

func TestArticleIterator_Empty(t *testing.T) {
	repo := setupRepo(t, 0)
	calls := 0
	err := NewArticleIterator(repo, 0).ForEach(context.Background(), func([]*core.Article) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestArticleIterator_StopsOnError(t *testing.T) {
	repo := setupRepo(t, 5)
	stop := errors.New("stop")
	calls := 0
	err := NewArticleIterator(repo, 2).ForEach(context.Background(), func([]*core.Article) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestArticleIterator_ContextCanceled(t *testing.T) {
	repo := setupRepo(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewArticleIterator(repo, 2).ForEach(ctx, func([]*core.Article) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReextractor_Run(t *testing.T) {
	repo := setupRepo(t, 5)
	ctx := context.Background()
	before, err := repo.Get(ctx, "article-00")
	require.NoError(t, err)

	var out bytes.Buffer
	r, err := NewReextractor(repo, extract.New(), &Config{BatchSize: 2, ReportInterval: 1, MaxRetries: 1}, &out)
	require.NoError(t, err)

	stats, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Processed)
	assert.Equal(t, 5, stats.Changed)
	assert.Contains(t, out.String(), "Starting re-extraction of 5 articles (batch size: 2)")
	assert.Contains(t, out.String(), "Progress: 5/5 (100.0%) - 5 changed")

	after, err := repo.Get(ctx, "article-00")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lisbon"}, after.Entities)
	assert.Equal(t, "engine", after.Topics[0])
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	// A second pass finds nothing to rewrite.
	stats, err = r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Processed)
	assert.Zero(t, stats.Changed)
}

func TestReextractor_EmptyStore(t *testing.T) {
	var out bytes.Buffer
	r, err := NewReextractor(setupRepo(t, 0), extract.New(), nil, &out)
	require.NoError(t, err)

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Processed)
	assert.Contains(t, out.String(), "No articles found")
}

type failingRepository struct {
	storage.ArticleRepository
	upserts int
}

func (f *failingRepository) Upsert(context.Context, ...*core.Article) (*storage.BulkResult, error) {
	f.upserts++
	return nil, errors.New("disk full")
}

func TestReextractor_WriteFailure(t *testing.T) {
	repo := &failingRepository{ArticleRepository: setupRepo(t, 3)}
	r, err := NewReextractor(repo, extract.New(), &Config{BatchSize: 10, ReportInterval: 10, MaxRetries: 3, RetryDelay: time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 3, repo.upserts)
}

func TestNewReextractor_RequiresDependencies(t *testing.T) {
	_, err := NewReextractor(nil, extract.New(), nil, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewReextractor(setupRepo(t, 0), nil, nil, nil)
	assert.ErrorIs(t, err, ErrExtractorRequired)
}
