package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RELEASE_CONFIG is set
//  3. env (prefix RELEASE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RELEASE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RELEASE_ADDR, RELEASE_MIN_STREAK_LENGTH, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("RELEASE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "release_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the engine would refuse anyway, so bad
// configuration fails at startup rather than on the first request.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MinStreakLength < 1:
		return fmt.Errorf("%w: min_streak_length must be >= 1, got %d",
			ErrInvalidConfig, c.MinStreakLength)
	case c.DominanceThreshold < 0 || c.DominanceThreshold > 1:
		return fmt.Errorf("%w: dominance_threshold must be within [0,1], got %g",
			ErrInvalidConfig, c.DominanceThreshold)
	case c.NotableGapThreshold < 0:
		return fmt.Errorf("%w: notable_gap_threshold must be >= 0, got %g",
			ErrInvalidConfig, c.NotableGapThreshold)
	case c.CloseGapThreshold < 0:
		return fmt.Errorf("%w: close_gap_threshold must be >= 0, got %g",
			ErrInvalidConfig, c.CloseGapThreshold)
	case c.RankShiftThreshold < 1:
		return fmt.Errorf("%w: rank_shift_threshold must be >= 1, got %d",
			ErrInvalidConfig, c.RankShiftThreshold)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be >= 1, got %d",
			ErrInvalidConfig, c.Parallelism)
	case c.MaxTopics < 0:
		return fmt.Errorf("%w: max_topics must be >= 0, got %d",
			ErrInvalidConfig, c.MaxTopics)
	}
	return nil
}
