package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/poiesic/gleaner"
	"github.com/poiesic/gleaner/config"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/extract"
	"github.com/poiesic/gleaner/storage"
)

// samples are JSON lines in the same shape as a -src file.
var samples = []string{
	`{"guid":"seed-001","title":"NASA schedules next lunar lander test","description":"NASA engineers in Houston confirmed the lander test for Monday. The lander carries new radar instruments.","pubDate":"2024-03-04T09:00:00Z","sourceUrl":"https://news.example.com/space/lander","author":["Jane Doe"]}`,
	`{"guid":"seed-002","title":"Markets rally after rate decision","description":"Stocks climbed in London and Frankfurt after the central bank held rates. Bank shares led the rally.","pubDate":"2024-03-04T11:30:00Z","sourceUrl":"https://news.example.com/markets/rally","author":["Omar Haddad"]}`,
	`{"guid":"seed-003","title":"Acme Corp opens research lab in Lisbon","description":"Acme Corp said the Lisbon lab will focus on battery chemistry. The lab hires two hundred researchers.","pubDate":"2024-03-05T08:15:00Z","sourceUrl":"https://news.example.com/business/acme-lisbon"}`,
	`{"guid":"seed-004","title":"Storm closes schools across the coast","description":"A winter storm closed schools in Dublin and Galway. Forecasters expect the storm to ease by Friday.","pubDate":"2024-03-06T06:45:00Z","sourceUrl":"https://news.example.com/weather/storm","author":["Maeve Byrne"]}`,
	`{"guid":"seed-005","title":"City council approves new cycle lanes","description":"The council in Amsterdam approved twelve kilometres of cycle lanes. Work on the lanes starts in May.","pubDate":"2024-03-06T14:00:00Z","sourceUrl":"https://news.example.com/local/cycle-lanes"}`,
	`{"guid":"seed-006","title":"Telescope captures distant galaxy merger","description":"Astronomers at ESA released images of two galaxies merging. The galaxy pair sits a billion light years away.","pubDate":"2024-03-07T19:20:00Z","sourceUrl":"https://news.example.com/space/galaxy-merger","author":["Li Wei"]}`,
	`{"guid":"seed-007","title":"Football club signs young striker","description":"The club in Madrid signed the striker on a five year contract. The striker scored twenty goals last season.","pubDate":"2024-03-08T12:00:00Z","sourceUrl":"https://news.example.com/sport/striker"}`,
	`{"guid":"seed-008","title":"Researchers publish vaccine trial results","description":"Researchers in Berlin reported strong results from the vaccine trial. The trial enrolled four thousand volunteers.","pubDate":"2024-03-09T10:10:00Z","sourceUrl":"https://news.example.com/health/vaccine-trial","author":["Anna Schmidt"]}`,
}

type seedStats struct {
	Read     int
	Skipped  int
	Inserted int
	Replaced int
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// decodeArticle parses one JSON line and prepares it for storage.
func decodeArticle(line string, extractor *extract.Extractor, now time.Time) (*core.Article, error) {
	var article core.Article
	if err := json.Unmarshal([]byte(line), &article); err != nil {
		return nil, fmt.Errorf("malformed article: %w", err)
	}
	core.NormalizeArticle(&article, now)
	if err := core.ValidateArticle(&article); err != nil {
		return nil, err
	}
	if len(article.Topics) == 0 && len(article.Entities) == 0 {
		extractor.Enrich(&article)
	}
	return &article, nil
}

// seedBatched reads articles from source and upserts them in batches.
// Blank lines are ignored and invalid lines are logged and skipped.
func seedBatched(ctx context.Context, repo storage.ArticleRepository, extractor *extract.Extractor, source iter.Seq[string], batchSize int) (seedStats, error) {
	var stats seedStats
	batch := make([]*core.Article, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		result, err := repo.Upsert(ctx, batch...)
		if result != nil {
			stats.Inserted += result.Inserted
			stats.Replaced += result.Replaced
		}
		batch = batch[:0]
		return err
	}

	for line := range source {
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Read++
		article, err := decodeArticle(line, extractor, time.Now().UTC())
		if err != nil {
			stats.Skipped++
			slog.Warn("skipping article", "line", stats.Read, "err", err)
			continue
		}
		batch = append(batch, article)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}

	// Process any remaining articles
	return stats, flush()
}

func main() {
	seedFileName := flag.String("src", "", "JSON lines file of articles (built-in samples when empty)")
	dbPath := flag.String("db", "./data/articles", "path to BadgerDB database directory")
	batchSize := flag.Int("batch", 50, "articles per upsert")
	flag.Parse()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()
	db, err := gleaner.NewDatabase(ctx, config.StoreConfig{Driver: config.DriverBadger, Path: *dbPath})
	if err != nil {
		panic(err)
	}
	defer db.Close()

	// Determine source of seed data
	var source iter.Seq[string]
	if *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(samples)
	}

	stats, err := seedBatched(ctx, db.ArticleRepository(), db.Extractor(), source, max(*batchSize, 1))
	if err != nil {
		panic(err)
	}
	slog.Info("seeding complete",
		"read", stats.Read,
		"skipped", stats.Skipped,
		"inserted", stats.Inserted,
		"replaced", stats.Replaced)
}
