package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	outputPermission    = 0600
)

// Run executes the complete sample data flow: health check, generation,
// optional file dump, submission, and a topics round trip.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting sample data run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("years", config.Years),
		logger.Int("companies", config.Companies),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	records, err := Generate(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("dataset generation failed: %w", err)
	}

	if config.OutputFile != "" {
		if err := saveRecordsToFile(ctx, config, records); err != nil {
			logger.Get().Warn(ctx, "failed to save records to file", logger.Error(err))
		}
	}

	if err := submitRecords(ctx, config, records, stats); err != nil {
		return fmt.Errorf("record submission failed: %w", err)
	}

	report, err := fetchTopics(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("topic retrieval failed: %w", err)
	}
	displayTopics(ctx, config, report)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 counts as healthy; the endpoint serves Prometheus metrics.
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveRecordsToFile dumps the generated dataset as a JSON record batch,
// ready to replay with curl against POST /records.
func saveRecordsToFile(ctx context.Context, config *Config, records []model.RankingRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to save")
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(recordBatch{Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(config.OutputFile, data, outputPermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "records saved to file", logger.String("filename", config.OutputFile))
	return nil
}

// displayTopics prints the report's topic summaries.
func displayTopics(ctx context.Context, config *Config, report *model.Report) {
	logger.Get().Info(ctx, "report received",
		logger.String("runID", report.RunID),
		logger.Int("topics", len(report.Topics)),
		logger.Int("warnings", len(report.Warnings)))

	if !config.Verbose {
		return
	}
	for _, t := range report.Topics {
		logger.Get().Info(ctx, "topic",
			logger.String("kind", string(t.Kind)),
			logger.String("category", t.Category.String()),
			logger.Float64("significance", t.Significance),
			logger.String("summary", t.Summary))
	}
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("recordsGenerated", stats.RecordsGenerated),
		logger.Int("recordsSubmitted", stats.RecordsSubmitted),
		logger.Int("recordsAccepted", stats.RecordsAccepted),
		logger.Int("recordsRejected", stats.RecordsRejected),
		logger.Int("topicsRetrieved", stats.TopicsRetrieved),
		logger.Int("warnings", stats.Warnings),
		logger.String("duration", stats.Duration.String()))
}
