package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/TTMK7777/release-creator/internal/sampledata"
)

// Default configuration constants.
const (
	defaultYears      = 5
	defaultCompanies  = 8
	defaultSeed       = 1
	defaultBatchSize  = 500
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		years      = flag.Int("years", defaultYears, "Number of consecutive years to generate")
		companies  = flag.Int("companies", defaultCompanies, "Number of companies per category")
		seed       = flag.Int64("seed", defaultSeed, "Random seed for the dataset")
		batchSize  = flag.Int("batch", defaultBatchSize, "Records per submission batch")
		workers    = flag.Int("workers", runtime.NumCPU(), "Number of concurrent submitters")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output file for generated records (JSON)")
		logFile    = flag.String("log", "", "Log file for run output (default: sample_run_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Print every emitted topic")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := sampledata.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &sampledata.Config{
		BaseURL:   *baseURL,
		Years:     *years,
		Companies: *companies,
		Items: []string{
			"support quality",
			"cost performance",
			"ease of use",
		},
		Departments: []string{
			"sales",
			"engineering",
		},
		Seed:       *seed,
		BatchSize:  *batchSize,
		Workers:    *workers,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		return
	}
}
