package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/TTMK7777/release-creator/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the defaults apply", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.MinStreakLength, ShouldEqual, 2)
			So(cfg.DominanceThreshold, ShouldEqual, 0.6)
			So(cfg.NotableGapThreshold, ShouldEqual, 2.0)
			So(cfg.CloseGapThreshold, ShouldEqual, 0.5)
			So(cfg.RankShiftThreshold, ShouldEqual, 2)
			So(cfg.Parallelism, ShouldBeGreaterThan, 0)
			So(cfg.MaxTopics, ShouldEqual, 0)
			So(cfg.StoreCapacity, ShouldEqual, 4096)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		_ = os.Setenv("RELEASE_ADDR", ":7070")
		_ = os.Setenv("RELEASE_LOG_LEVEL", "debug")
		_ = os.Setenv("RELEASE_MIN_STREAK_LENGTH", "3")
		_ = os.Setenv("RELEASE_NOTABLE_GAP_THRESHOLD", "1.5")
		_ = os.Setenv("RELEASE_MAX_TOPICS", "25")
		defer func() {
			_ = os.Unsetenv("RELEASE_ADDR")
			_ = os.Unsetenv("RELEASE_LOG_LEVEL")
			_ = os.Unsetenv("RELEASE_MIN_STREAK_LENGTH")
			_ = os.Unsetenv("RELEASE_NOTABLE_GAP_THRESHOLD")
			_ = os.Unsetenv("RELEASE_MAX_TOPICS")
		}()

		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then env wins over defaults", func() {
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.MinStreakLength, ShouldEqual, 3)
			So(cfg.NotableGapThreshold, ShouldEqual, 1.5)
			So(cfg.MaxTopics, ShouldEqual, 25)

			Convey("And untouched keys keep their defaults", func() {
				So(cfg.DominanceThreshold, ShouldEqual, 0.6)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yaml := "addr: \":6060\"\nmin_streak_length: 4\ndominance_threshold: 0.8\n"
		So(os.WriteFile(path, []byte(yaml), 0600), ShouldBeNil)

		_ = os.Setenv("RELEASE_CONFIG", path)
		defer func() { _ = os.Unsetenv("RELEASE_CONFIG") }()

		Convey("When loading without env overrides", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.MinStreakLength, ShouldEqual, 4)
			So(cfg.DominanceThreshold, ShouldEqual, 0.8)
		})

		Convey("When an env var shadows the file", func() {
			_ = os.Setenv("RELEASE_ADDR", ":5050")
			defer func() { _ = os.Unsetenv("RELEASE_ADDR") }()

			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
			So(cfg.MinStreakLength, ShouldEqual, 4)
		})
	})

	Convey("Given a missing config file path", t, func() {
		_ = os.Setenv("RELEASE_CONFIG", "/nonexistent/config.yaml")
		defer func() { _ = os.Unsetenv("RELEASE_CONFIG") }()

		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given out-of-range values", t, func() {
		cases := map[string]string{
			"RELEASE_MIN_STREAK_LENGTH":     "0",
			"RELEASE_DOMINANCE_THRESHOLD":   "1.5",
			"RELEASE_NOTABLE_GAP_THRESHOLD": "-1",
			"RELEASE_CLOSE_GAP_THRESHOLD":   "-0.5",
			"RELEASE_RANK_SHIFT_THRESHOLD":  "0",
			"RELEASE_PARALLELISM":           "0",
			"RELEASE_MAX_TOPICS":            "-1",
			"RELEASE_ADDR":                  "",
		}

		for key, value := range cases {
			_ = os.Setenv(key, value)
			cfg, err := config.Load(context.Background())
			So(cfg, ShouldBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			_ = os.Unsetenv(key)
		}
	})
}
