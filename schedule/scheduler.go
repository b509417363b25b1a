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

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/poiesic/gleaner/ingestion"
	"github.com/robfig/cron/v3"
)

// Runner performs one ingestion run over sources.
type Runner interface {
	Run(ctx context.Context, sources []string) (*ingestion.Report, error)
}

// State is the scheduler's run state.
type State int32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "Running"
	}
	return "Idle"
}

// Scheduler fires a Runner on a cron schedule and on demand.
type Scheduler struct {
	runner  Runner
	sources []string
	state   atomic.Int32
	mu      sync.Mutex
	cron    *cron.Cron
	current chan struct{} // closed when the active run finishes
	logger  *slog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a scheduler that runs runner over sources.
func New(runner Runner, sources []string, opts ...Option) (*Scheduler, error) {
	if runner == nil {
		return nil, ErrRunnerRequired
	}
	s := &Scheduler{
		runner:  runner,
		sources: sources,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Spec returns the cron expression for an interval in minutes:
// "*/N * * * *" below an hour, "@every Nm" from an hour up.
func Spec(intervalMinutes int) (string, error) {
	switch {
	case intervalMinutes < 1:
		return "", fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	case intervalMinutes < 60:
		return fmt.Sprintf("*/%d * * * *", intervalMinutes), nil
	default:
		return fmt.Sprintf("@every %dm", intervalMinutes), nil
	}
}

// Start schedules a run every intervalMinutes.
func (s *Scheduler) Start(intervalMinutes int) error {
	spec, err := Spec(intervalMinutes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return ErrAlreadyStarted
	}

	logger := &cronLogger{logger: s.logger.With("component", "cron")}
	c := cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger)))
	if _, err := c.AddFunc(spec, s.fire); err != nil {
		return fmt.Errorf("scheduling %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("scheduler started", "spec", spec, "sources", len(s.sources))
	return nil
}

// Stop stops scheduling further runs. The returned context is done once
// the active run, scheduled or triggered, has finished.
func (s *Scheduler) Stop() context.Context {
	s.mu.Lock()
	var cronDone context.Context
	if s.cron != nil {
		cronDone = s.cron.Stop()
		s.cron = nil
		s.logger.Info("scheduler stopped")
	}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		if cronDone != nil {
			<-cronDone.Done()
		}
		s.mu.Lock()
		current := s.current
		s.mu.Unlock()
		if current != nil {
			<-current
		}
	}()
	return ctx
}

// Trigger runs the pipeline now. It returns ErrRunInProgress without running
// when another run is active.
func (s *Scheduler) Trigger(ctx context.Context) (*ingestion.Report, error) {
	return s.run(ctx)
}

// State reports whether a run is active.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

func (s *Scheduler) run(ctx context.Context) (*ingestion.Report, error) {
	done := make(chan struct{})
	s.mu.Lock()
	if !s.state.CompareAndSwap(int32(Idle), int32(Running)) {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.current = done
	s.mu.Unlock()
	defer func() {
		s.state.Store(int32(Idle))
		close(done)
	}()
	return s.runner.Run(ctx, s.sources)
}

// fire is the scheduled job.
func (s *Scheduler) fire() {
	report, err := s.run(context.Background())
	switch {
	case errors.Is(err, ErrRunInProgress):
		s.logger.Info("skipping scheduled run, previous run still in progress")
	case err != nil:
		s.logger.Error("scheduled run failed", "err", err)
	default:
		s.logger.Info("scheduled run finished", "run", report.RunID, "articles", report.Count(),
			"failures", len(report.Failures))
	}
}

// cronLogger adapts slog to cron.Logger. Routine cron chatter goes to debug.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}
