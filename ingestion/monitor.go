package ingestion

import (
	"github.com/poiesic/gleaner/feed"
	"github.com/poiesic/gleaner/storage"
)

// Monitor provides hooks to observe a pipeline run.
// Hooks for different sources may be called concurrently.
type Monitor interface {
	Start(runID string, sources []string)
	SourceFetched(url string, articles int)
	SourceFailed(err *feed.FetchError)
	Stored(result *storage.BulkResult)
	Finish(report *Report)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []string)      {}
func (n *noopMonitor) SourceFetched(_ string, _ int)   {}
func (n *noopMonitor) SourceFailed(_ *feed.FetchError) {}
func (n *noopMonitor) Stored(_ *storage.BulkResult)    {}
func (n *noopMonitor) Finish(_ *Report)                {}
