package ingestion

import (
	"time"

	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/feed"
	"github.com/poiesic/gleaner/storage"
)

// SourceFailure describes one source that could not be fetched.
type SourceFailure struct {
	URL   string    `json:"url"`
	Kind  feed.Kind `json:"kind"`
	Error string    `json:"error"`
}

// Report describes a pipeline run.
type Report struct {
	RunID     string              `json:"runId"`
	Articles  []*core.Article     `json:"-"`
	Failures  []SourceFailure     `json:"failures"`
	Rejected  int                 `json:"rejected"`
	Bulk      *storage.BulkResult `json:"bulk,omitempty"`
	StartedAt time.Time           `json:"startedAt"`
	Duration  time.Duration       `json:"duration"`
}

// Count returns the number of enriched articles submitted to the store.
func (r *Report) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Articles)
}
