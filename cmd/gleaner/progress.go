package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/poiesic/gleaner/feed"
	"github.com/poiesic/gleaner/ingestion"
	"github.com/poiesic/gleaner/storage"
)

// fetchProgress reports pipeline progress on a terminal line.
// It implements ingestion.Monitor.
type fetchProgress struct {
	writer    io.Writer
	total     int
	done      int
	failed    int
	articles  int
	startTime time.Time
	started   bool
	mu        sync.Mutex
}

var _ ingestion.Monitor = (*fetchProgress)(nil)

func newFetchProgress(writer io.Writer) *fetchProgress {
	return &fetchProgress{writer: writer}
}

func (p *fetchProgress) Start(runID string, sources []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = len(sources)
	p.done = 0
	p.failed = 0
	p.articles = 0
	p.startTime = time.Now()
	p.started = true
	fmt.Fprintf(p.writer, "Run %s\n", runID)
}

func (p *fetchProgress) SourceFetched(_ string, articles int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.done++
	p.articles += articles
	p.report()
}

func (p *fetchProgress) SourceFailed(_ *feed.FetchError) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.done++
	p.failed++
	p.report()
}

func (p *fetchProgress) Stored(result *storage.BulkResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.writer, "\nStored: %d inserted, %d replaced, %d failed",
		result.Inserted, result.Replaced, result.Failed)
}

// Finish prints the final line.
func (p *fetchProgress) Finish(_ *ingestion.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	fmt.Fprintln(p.writer) // Print newline after final progress
	p.started = false
}

// report prints the current progress. Must be called with lock held.
func (p *fetchProgress) report() {
	percentage := 100.0
	if p.total > 0 {
		percentage = float64(p.done) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rSources: %d/%d (%.1f%%) - %d articles, %d failed - %.1fs",
		p.done, p.total, percentage, p.articles, p.failed, time.Since(p.startTime).Seconds())
}
