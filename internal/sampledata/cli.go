package sampledata

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/TTMK7777/release-creator/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "sample_run_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the sample records tool.
func ShowHelp() {
	os.Stdout.WriteString(`Ranking Sample Data Tool
========================

Generates a synthetic multi-year ranking dataset, submits it to a running
service, and fetches the resulting press-release topics.

Usage:
  go run cmd/sample-records/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -years int
        Number of consecutive years to generate (default 5)
  -companies int
        Number of companies per category (default 8)
  -seed int
        Random seed; the same seed reproduces the same dataset (default 1)
  -batch int
        Records per submission batch (default 500)
  -workers int
        Number of concurrent submitters (default CPU cores)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Optional file for the generated record batch (JSON)
  -log string
        Log file for run output (default: sample_run_TIMESTAMP.log)
  -verbose
        Print every emitted topic
  -help
        Show this help message

Examples:
  # Run with default settings against a local service
  go run cmd/sample-records/main.go

  # Ten years, twelve companies, reproducible dataset
  go run cmd/sample-records/main.go -years 10 -companies 12 -seed 42

  # Dump the dataset without verbose topic output
  go run cmd/sample-records/main.go -output dataset.json
`)
}
