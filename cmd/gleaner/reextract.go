package main

import (
	"fmt"

	"github.com/poiesic/gleaner"
	"github.com/poiesic/gleaner/reextract"
	"github.com/urfave/cli/v2"
)

func reextractCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := gleaner.NewDatabase(c.Context, cfg.Store, gleaner.WithExtractor(newExtractor(cfg)))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	rcfg := reextract.DefaultConfig()
	rcfg.BatchSize = c.Int("batch-size")
	rcfg.MaxRetries = c.Int("max-retries")

	r, err := reextract.NewReextractor(db.ArticleRepository(), db.Extractor(), rcfg, c.App.ErrWriter)
	if err != nil {
		return fmt.Errorf("failed to create reextractor: %w", err)
	}

	stats, err := r.Run(c.Context)
	if err != nil {
		return fmt.Errorf("re-extraction failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Re-extracted %d articles (%d changed)\n", stats.Processed, stats.Changed)
	return nil
}
