// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/gleaner"
	"github.com/poiesic/gleaner/ingestion"
	"github.com/poiesic/gleaner/schedule"
	"github.com/poiesic/gleaner/server"
	"github.com/urfave/cli/v2"
)

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	db, err := gleaner.NewDatabase(ctx, cfg.Store,
		gleaner.WithLogger(logger),
		gleaner.WithFetcher(newFeedClient(cfg)),
		gleaner.WithExtractor(newExtractor(cfg)))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(ingestion.WithPoolSize(cfg.Workers))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	scheduler, err := schedule.New(pipeline, cfg.Feeds, schedule.WithLogger(logger))
	if err != nil {
		return err
	}
	if len(cfg.Feeds) == 0 {
		logger.Warn("no feeds configured, scheduled runs will store nothing")
	}
	if err := scheduler.Start(cfg.FetchIntervalMinutes); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		<-scheduler.Stop().Done()
	}()

	if c.Bool("fetch-on-start") {
		go func() {
			if _, err := scheduler.Trigger(context.WithoutCancel(ctx)); err != nil {
				logger.Error("startup fetch failed", "err", err)
			}
		}()
	}

	srv, err := server.New(scheduler, searcher, server.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("serving", "addr", cfg.ListenAddr, "store", describeStore(cfg.Store),
		"feeds", len(cfg.Feeds), "interval_minutes", cfg.FetchIntervalMinutes)
	return srv.Run(ctx, cfg.ListenAddr)
}
