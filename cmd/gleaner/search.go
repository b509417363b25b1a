package main

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/poiesic/gleaner"
	"github.com/poiesic/gleaner/search"
	"github.com/urfave/cli/v2"
)

func searchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := gleaner.NewDatabase(c.Context, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	result, err := searcher.Search(c.Context, search.Params{
		Title:     c.String("title"),
		StartDate: c.String("start-date"),
		EndDate:   c.String("end-date"),
		Topics:    c.String("topics"),
		Entities:  c.String("entities"),
		Page:      strconv.Itoa(c.Int("page")),
		Limit:     strconv.Itoa(c.Int("limit")),
	})
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	renderTable(c.App.Writer, result)
	return nil
}
