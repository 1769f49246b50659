// Package app composes the analytical pipeline into the final report:
// load, summarize, clean, derive rates, partition leagues, roll up
// careers, find record holders, assemble. Each run is a pure function
// of the loaded table; nothing is cached between runs.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tmcrae/batstat/internal/adapters/source"
	"github.com/tmcrae/batstat/internal/domain/career"
	"github.com/tmcrae/batstat/internal/domain/dataset"
	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/rates"
	"github.com/tmcrae/batstat/internal/domain/record"
	"github.com/tmcrae/batstat/pkg/logger"
	"github.com/tmcrae/batstat/pkg/metrics"
)

// RunStats describes the most recent pipeline run.
type RunStats struct {
	Runs       int           `json:"runs"`
	RowsLoaded int           `json:"rows_loaded"`
	RowsKept   int           `json:"rows_kept"`
	Careers    int           `json:"careers"`
	Duration   time.Duration `json:"duration_ns"`
	LastRun    time.Time     `json:"last_run"`
}

// Service runs the pipeline against one configured source.
type Service struct {
	loader    source.Loader
	minAtBats int
	logger    logger.Logger

	mu   sync.RWMutex
	last RunStats
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMinAtBats sets the qualifying career at-bats threshold.
func WithMinAtBats(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.minAtBats = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service over the given loader.
func New(loader source.Loader, opts ...Option) *Service {
	s := &Service{
		loader:    loader,
		minAtBats: 50,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Report runs the full pipeline and assembles the output structure.
// Data problems are absorbed as missing values during loading and fall
// out in cleaning; the only error paths are the source itself and the
// post-clean completeness contract, and neither yields a partial report.
func (s *Service) Report(ctx context.Context) (*model.Report, error) {
	start := time.Now()

	raw, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}

	summary := dataset.Summarize(raw)

	rows, err := dataset.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("clean table: %w", err)
	}
	rates.OnBase(rows)

	nl, al := dataset.Partition(rows)

	totals := career.NewAggregator(career.WithMinAtBats(s.minAtBats)).Totals(rows)
	rates.Career(totals)

	report := &model.Report{
		RecordCount:   summary.RecordCount,
		CompleteCases: summary.CompleteCases,
		Years:         summary.Years,
		PlayerCount:   summary.PlayerCount,
		TeamCount:     summary.TeamCount,
		LeagueCount:   summary.LeagueCount,
		BB:            rows,
		NL:            nl,
		AL:            al,
		Records:       record.All(totals),
	}

	elapsed := time.Since(start)
	metrics.RecordRowsLoaded(len(raw))
	metrics.RecordRowsDropped(len(raw) - len(rows))
	metrics.UpdateCareerCount(len(totals))
	metrics.ObservePipelineDuration(elapsed)
	metrics.RecordReportBuilt()

	s.mu.Lock()
	s.last = RunStats{
		Runs:       s.last.Runs + 1,
		RowsLoaded: len(raw),
		RowsKept:   len(rows),
		Careers:    len(totals),
		Duration:   elapsed,
		LastRun:    time.Now(),
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "report assembled",
		logger.Int("rowsLoaded", len(raw)),
		logger.Int("rowsKept", len(rows)),
		logger.Int("careers", len(totals)),
		logger.Duration("elapsed", elapsed),
	)
	return report, nil
}

// Stats returns statistics about the most recent run.
func (s *Service) Stats() RunStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
