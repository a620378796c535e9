// Package sampledata generates synthetic ranking histories and drives a
// running service with them, end to end: submit records, request topics,
// summarize the outcome.
package sampledata

import "time"

// Config holds configuration for the sample data run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Years       int           // Number of consecutive years to generate
	Companies   int           // Number of companies per category
	Items       []string      // Evaluation item category names
	Departments []string      // Department category names
	Seed        int64         // Random seed; same seed, same dataset
	BatchSize   int           // Records per submission batch
	Workers     int           // Number of concurrent submitters
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for generated records
	LogFile     string        // Log file for run output
	Verbose     bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	RecordsGenerated int
	RecordsSubmitted int
	RecordsAccepted  int
	RecordsRejected  int
	TopicsRetrieved  int
	Warnings         int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
