// Package app provides the analysis service that implements the
// dependencies required by the HTTP API: it normalizes ranking records,
// runs the analytics engine, and returns ordered topic reports.
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/TTMK7777/release-creator/internal/adapters/repository"
	"github.com/TTMK7777/release-creator/internal/domain/dominance"
	"github.com/TTMK7777/release-creator/internal/domain/gap"
	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/internal/domain/movement"
	"github.com/TTMK7777/release-creator/internal/domain/streak"
	"github.com/TTMK7777/release-creator/internal/domain/topics"
	"github.com/TTMK7777/release-creator/pkg/logger"
	"github.com/TTMK7777/release-creator/pkg/metrics"
)

// Default analysis parameters. All are overridable via options or config.
const (
	defaultMinStreakLength     = 2
	defaultDominanceThreshold  = 0.6
	defaultNotableGapThreshold = 2.0
	defaultCloseGapThreshold   = 0.5
	defaultRankShiftThreshold  = 2
)

// Service runs the ranking-history analysis. It holds configuration only;
// every Analyze call is a pure pass over the records it is given, so
// concurrent calls need no coordination.
type Service struct {
	minStreakLength     int
	dominanceThreshold  float64
	notableGapThreshold float64
	closeGapThreshold   float64
	rankShiftThreshold  int
	parallelism         int
	maxTopics           int

	store  repository.Store
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMinStreakLength sets the minimum run length worth narrating.
func WithMinStreakLength(n int) Option {
	return func(s *Service) { s.minStreakLength = n }
}

// WithDominanceThreshold sets the minimum win ratio to call a company
// dominant.
func WithDominanceThreshold(t float64) Option {
	return func(s *Service) { s.dominanceThreshold = t }
}

// WithNotableGapThreshold sets the minimum score delta to flag a gap.
func WithNotableGapThreshold(t float64) Option {
	return func(s *Service) { s.notableGapThreshold = t }
}

// WithCloseGapThreshold sets the maximum score delta to flag a close race.
func WithCloseGapThreshold(t float64) Option {
	return func(s *Service) { s.closeGapThreshold = t }
}

// WithRankShiftThreshold sets the minimum position change to flag a
// rank movement.
func WithRankShiftThreshold(n int) Option {
	return func(s *Service) { s.rankShiftThreshold = n }
}

// WithParallelism bounds the number of analyzers running concurrently.
func WithParallelism(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.parallelism = n
		}
	}
}

// WithMaxTopics caps the report's topic list. Zero means unlimited.
func WithMaxTopics(n int) Option {
	return func(s *Service) { s.maxTopics = n }
}

// WithStore attaches a ranking record store for the dataset endpoints.
func WithStore(store repository.Store) Option {
	return func(s *Service) { s.store = store }
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default thresholds.
func New(opts ...Option) *Service {
	s := &Service{
		minStreakLength:     defaultMinStreakLength,
		dominanceThreshold:  defaultDominanceThreshold,
		notableGapThreshold: defaultNotableGapThreshold,
		closeGapThreshold:   defaultCloseGapThreshold,
		rankShiftThreshold:  defaultRankShiftThreshold,
		parallelism:         runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clone returns a copy of the service with additional options applied.
// Used by the API layer for per-request threshold overrides.
func (s *Service) Clone(opts ...Option) *Service {
	dup := *s
	for _, opt := range opts {
		opt(&dup)
	}
	return &dup
}

// Validate rejects thresholds outside the sane range before any analysis.
func (s *Service) Validate() error {
	switch {
	case s.minStreakLength < 1:
		return fmt.Errorf("%w: min streak length must be >= 1, got %d",
			ErrInvalidThreshold, s.minStreakLength)
	case s.dominanceThreshold < 0 || s.dominanceThreshold > 1:
		return fmt.Errorf("%w: dominance threshold must be within [0,1], got %g",
			ErrInvalidThreshold, s.dominanceThreshold)
	case s.notableGapThreshold < 0:
		return fmt.Errorf("%w: notable gap threshold must be >= 0, got %g",
			ErrInvalidThreshold, s.notableGapThreshold)
	case s.closeGapThreshold < 0:
		return fmt.Errorf("%w: close gap threshold must be >= 0, got %g",
			ErrInvalidThreshold, s.closeGapThreshold)
	case s.rankShiftThreshold < 1:
		return fmt.Errorf("%w: rank shift threshold must be >= 1, got %d",
			ErrInvalidThreshold, s.rankShiftThreshold)
	}
	return nil
}

// Analyze runs the full pipeline over a record snapshot: normalize, group,
// detect streaks/dominance/gaps/movements, and rank topics. Configuration
// errors abort before computation; malformed records are dropped and
// reported as warnings, never corrupting the rest of the result.
func (s *Service) Analyze(ctx context.Context, records []model.RankingRecord) (model.Report, error) {
	if err := s.Validate(); err != nil {
		return model.Report{}, err
	}
	start := time.Now()

	clean, warnings := normalize(records)
	table := grouping.Group(clean)
	warnings = append(warnings, auditScopes(table)...)

	var f topics.Findings
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	g.Go(func() error {
		f.Streaks = streak.Detect(table)
		return gctx.Err()
	})
	g.Go(func() error {
		f.Dominances = dominance.Analyze(table, s.dominanceThreshold)
		return gctx.Err()
	})
	g.Go(func() error {
		f.Gaps = gap.Analyze(table, s.notableGapThreshold, s.closeGapThreshold)
		return gctx.Err()
	})
	g.Go(func() error {
		f.Movements = movement.Shifts(table, s.rankShiftThreshold)
		f.Debuts = movement.Debuts(table)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return model.Report{}, fmt.Errorf("analysis cancelled: %w", err)
	}

	// Rank re-sorts everything with the same tie-break rules, so the
	// merge order of the parallel analyzers never shows in the output.
	ranked := topics.Rank(f, s.minStreakLength, topics.WithMaxTopics(s.maxTopics))

	report := model.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Topics:      ranked,
		Warnings:    warnings,
		Stats: model.ReportStats{
			RecordsIn:      len(records),
			RecordsDropped: len(records) - len(clean),
			Categories:     len(table.Categories()),
			Years:          table.YearCount(),
			TopicCount:     len(ranked),
		},
	}

	s.observeRun(ctx, report, time.Since(start))
	return report, nil
}

// AnalyzeStored runs Analyze over the current dataset snapshot.
func (s *Service) AnalyzeStored(ctx context.Context) (model.Report, error) {
	if s.store == nil {
		return model.Report{}, ErrNoStore
	}
	return s.Analyze(ctx, s.store.Snapshot(ctx))
}

// AnalyzeStoredWith runs a stored-dataset analysis with per-call option
// overrides. The receiver's configuration is untouched.
func (s *Service) AnalyzeStoredWith(ctx context.Context, opts ...Option) (model.Report, error) {
	if len(opts) == 0 {
		return s.AnalyzeStored(ctx)
	}
	return s.Clone(opts...).AnalyzeStored(ctx)
}

// AddRecords ingests a batch into the dataset store.
func (s *Service) AddRecords(ctx context.Context, records []model.RankingRecord) (int, []model.Warning, error) {
	if s.store == nil {
		return 0, nil, ErrNoStore
	}
	added, warnings := s.store.Add(ctx, records)
	metrics.RecordRecordsIngested(added)
	metrics.RecordRecordsDropped(len(records) - added)
	metrics.UpdateDatasetSize(s.store.Count(ctx))
	return added, warnings, nil
}

// ClearRecords empties the dataset store.
func (s *Service) ClearRecords(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}
	s.store.Clear(ctx)
	metrics.UpdateDatasetSize(0)
	return nil
}

// CountRecords returns the dataset size, zero without a store.
func (s *Service) CountRecords(ctx context.Context) int {
	if s.store == nil {
		return 0
	}
	return s.store.Count(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"minStreakLength":     s.minStreakLength,
		"dominanceThreshold":  s.dominanceThreshold,
		"notableGapThreshold": s.notableGapThreshold,
		"closeGapThreshold":   s.closeGapThreshold,
		"rankShiftThreshold":  s.rankShiftThreshold,
		"parallelism":         s.parallelism,
	}
	if s.store != nil {
		stats["datasetSize"] = s.store.Count(context.Background())
	}
	return stats
}

// observeRun records metrics and logs for one analysis pass.
func (s *Service) observeRun(ctx context.Context, report model.Report, elapsed time.Duration) {
	metrics.RecordAnalysisDuration(float64(elapsed.Milliseconds()))
	metrics.RecordAnalysisRun()
	for _, t := range report.Topics {
		metrics.RecordTopicEmitted(string(t.Kind))
	}
	metrics.RecordRecordsDropped(report.Stats.RecordsDropped)

	if s.logger == nil {
		return
	}
	s.logger.Info(ctx, "analysis complete",
		logger.String("run_id", report.RunID),
		logger.Int("records_in", report.Stats.RecordsIn),
		logger.Int("records_dropped", report.Stats.RecordsDropped),
		logger.Int("categories", report.Stats.Categories),
		logger.Int("topics", report.Stats.TopicCount),
		logger.Int("warnings", len(report.Warnings)),
	)
	for _, w := range report.Warnings {
		s.logger.Warn(ctx, "record dropped or suspect",
			logger.String("code", w.Code),
			logger.String("detail", w.Message),
		)
	}
}
