package storage

import (
	"math"
	"strings"
	"time"

	"github.com/poiesic/gleaner/core"
)

const (
	// DefaultPage is used when a query has no valid page.
	DefaultPage = 1
	// DefaultLimit is used when a query has no valid limit.
	DefaultLimit = 10
)

// Filter selects articles. All fields are optional. Set fields are combined
// with AND; values within Topics or Entities are combined with OR.
type Filter struct {
	// Title matches a case-insensitive substring of the article title.
	Title string
	// Start and End are inclusive bounds on PubDate. A zero value is unbounded.
	Start time.Time
	End   time.Time
	// Topics matches articles carrying at least one of the listed topics.
	Topics []string
	// Entities matches articles carrying at least one of the listed entities.
	Entities []string
}

// IsZero reports whether the filter matches every article.
func (f Filter) IsZero() bool {
	return f.Title == "" && f.Start.IsZero() && f.End.IsZero() && len(f.Topics) == 0 && len(f.Entities) == 0
}

// Matches reports whether a satisfies every set field of the filter.
func (f Filter) Matches(a *core.Article) bool {
	if a == nil {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(f.Title)) {
		return false
	}
	if !f.Start.IsZero() && a.PubDate.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && a.PubDate.After(f.End) {
		return false
	}
	if len(f.Topics) > 0 && !anyOf(f.Topics, a.HasTopic) {
		return false
	}
	if len(f.Entities) > 0 && !anyOf(f.Entities, a.HasEntity) {
		return false
	}
	return true
}

func anyOf(values []string, has func(string) bool) bool {
	for _, v := range values {
		if has(v) {
			return true
		}
	}
	return false
}

// Query is a filtered, paginated article request. Page is 1-based.
type Query struct {
	Filter
	Page  int
	Limit int
}

// Normalize returns a copy of q with Page and Limit coerced to positive values.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Skip returns the number of matching articles before the requested page.
// It saturates at math.MaxInt instead of overflowing.
func (q Query) Skip() int {
	n := q.Normalize()
	if n.Page-1 > math.MaxInt/n.Limit {
		return math.MaxInt
	}
	return (n.Page - 1) * n.Limit
}

// QueryResult is one page of matching articles.
type QueryResult struct {
	Articles []*core.Article `json:"articles"`
	// Total counts every matching article, independent of pagination.
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Paginate applies q's page window to matches, which must already be in
// result order.
func Paginate(q Query, matches []*core.Article) *QueryResult {
	q = q.Normalize()
	result := &QueryResult{
		Articles: []*core.Article{},
		Total:    len(matches),
		Page:     q.Page,
		Limit:    q.Limit,
	}
	skip := q.Skip()
	if skip >= len(matches) {
		return result
	}
	end := min(skip+q.Limit, len(matches))
	result.Articles = append(result.Articles, matches[skip:end]...)
	return result
}
