package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/poiesic/gleaner"
	"github.com/poiesic/gleaner/ingestion"
	"github.com/urfave/cli/v2"
)

func fetchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if len(cfg.Feeds) == 0 {
		return errors.New("no feeds configured: set --feeds, RSS_FEED_URLS or feeds in the config file")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gleaner.NewDatabase(ctx, cfg.Store,
		gleaner.WithFetcher(newFeedClient(cfg)),
		gleaner.WithExtractor(newExtractor(cfg)))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	progress := newFetchProgress(c.App.ErrWriter)
	pipeline, err := db.NewIngestionPipeline(
		ingestion.WithPoolSize(cfg.Workers),
		ingestion.WithMonitor(progress),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(c.App.ErrWriter, "Store: %s\n", describeStore(cfg.Store))
	fmt.Fprintf(c.App.ErrWriter, "Sources: %d\n", len(cfg.Feeds))
	fmt.Fprintln(c.App.ErrWriter)

	report, err := pipeline.Run(ctx, cfg.Feeds)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	for _, f := range report.Failures {
		fmt.Fprintf(c.App.ErrWriter, "  %s %s: %s\n", f.Kind, f.URL, f.Error)
	}
	fmt.Fprintf(c.App.Writer, "Fetched %d articles (%d inserted, %d replaced, %d rejected, %d of %d sources failed)\n",
		report.Count(), report.Bulk.Inserted, report.Bulk.Replaced, report.Rejected,
		len(report.Failures), len(cfg.Feeds))
	return nil
}
