// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MinStreakLength is the minimum consecutive-win run worth narrating.
	MinStreakLength int `koanf:"min_streak_length"`

	// DominanceThreshold is the minimum win ratio to call a company
	// dominant, within [0,1].
	DominanceThreshold float64 `koanf:"dominance_threshold"`

	// NotableGapThreshold is the minimum first-to-second score delta to
	// flag a notable gap.
	NotableGapThreshold float64 `koanf:"notable_gap_threshold"`

	// CloseGapThreshold is the maximum score delta to flag a close race.
	CloseGapThreshold float64 `koanf:"close_gap_threshold"`

	// RankShiftThreshold is the minimum position change between the two
	// most recent years to flag a movement.
	RankShiftThreshold int `koanf:"rank_shift_threshold"`

	// Parallelism bounds concurrent analyzers per run.
	Parallelism int `koanf:"parallelism"`

	// MaxTopics caps the topics per report; 0 means unlimited.
	MaxTopics int `koanf:"max_topics"`

	// StoreCapacity pre-sizes the in-memory dataset store.
	StoreCapacity int `koanf:"store_capacity"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		MinStreakLength:     2,
		DominanceThreshold:  0.6,
		NotableGapThreshold: 2.0,
		CloseGapThreshold:   0.5,
		RankShiftThreshold:  2,
		Parallelism:         runtime.NumCPU(),
		MaxTopics:           0,
		StoreCapacity:       4096,
	}
}
