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

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/gleaner/ingestion"
	"github.com/poiesic/gleaner/schedule"
	"github.com/poiesic/gleaner/search"
	"github.com/poiesic/gleaner/storage"
)

// DefaultShutdownTimeout bounds graceful shutdown in Run.
const DefaultShutdownTimeout = 10 * time.Second

// Trigger starts an ingestion run on demand.
type Trigger interface {
	Trigger(ctx context.Context) (*ingestion.Report, error)
}

// Searcher answers article searches.
type Searcher interface {
	Search(ctx context.Context, params search.Params) (*storage.QueryResult, error)
}

// Server routes HTTP requests to the scheduler and searcher.
type Server struct {
	trigger         Trigger
	searcher        Searcher
	engine          *gin.Engine
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout sets how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a server.
func New(trigger Trigger, searcher Searcher, opts ...Option) (*Server, error) {
	if trigger == nil {
		return nil, errors.New("trigger required")
	}
	if searcher == nil {
		return nil, errors.New("searcher required")
	}

	s := &Server{
		trigger:         trigger,
		searcher:        searcher,
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(requestLogger(s.logger), recovery(s.logger))
	engine.GET("/", s.health)
	engine.GET("/fetch-articles", s.fetchArticles)
	engine.GET("/search-articles", s.searchArticles)
	s.engine = engine

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "News aggregator service up and running"})
}

func (s *Server) fetchArticles(c *gin.Context) {
	// A client that hangs up must not abort a run halfway through storing.
	ctx := context.WithoutCancel(c.Request.Context())
	report, err := s.trigger.Trigger(ctx)
	switch {
	case errors.Is(err, schedule.ErrRunInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Fetch %d Articles successfully", report.Count()),
		"count":    report.Count(),
		"runId":    report.RunID,
		"failures": report.Failures,
	})
}

func (s *Server) searchArticles(c *gin.Context) {
	params := search.ParamsFromValues(c.Request.URL.Query())
	result, err := s.searcher.Search(c.Request.Context(), params)
	switch {
	case errors.Is(err, search.ErrInvalidQueryParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search articles"})
		return
	}
	c.JSON(http.StatusOK, result)
}
