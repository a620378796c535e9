package sampledata

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"

	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/pkg/logger"
)

// Score shape constants. Scores land in the 55-85 band typical of
// published satisfaction surveys.
const (
	baseScoreMin   = 55.0
	baseScoreRange = 20.0
	yearlyDrift    = 1.5
	noiseRange     = 3.0
	leaderBonus    = 6.0
	firstYear      = 2016
)

// Generate builds a deterministic multi-year ranking dataset. Each category
// gets its own company strengths, so streaks, gaps, and rank shifts all
// occur naturally across the years.
func Generate(ctx context.Context, config *Config, stats *Stats) ([]model.RankingRecord, error) {
	if config.Years < 2 {
		return nil, fmt.Errorf("need at least 2 years, got %d", config.Years)
	}
	if config.Companies < 2 {
		return nil, fmt.Errorf("need at least 2 companies, got %d", config.Companies)
	}

	logger.Get().Info(ctx, "generating ranking dataset",
		logger.Int("years", config.Years),
		logger.Int("companies", config.Companies),
		logger.Any("seed", config.Seed))

	rng := rand.New(rand.NewSource(config.Seed))

	companies := make([]string, config.Companies)
	for i := range companies {
		companies[i] = "Vendor " + string(rune('A'+i%26)) + strconv.Itoa(i/26+1)
	}

	categories := []model.Category{model.Overall()}
	for _, item := range config.Items {
		categories = append(categories, model.EvaluationItem(item))
	}
	for _, dept := range config.Departments {
		categories = append(categories, model.Department(dept))
	}

	var records []model.RankingRecord
	for _, cat := range categories {
		records = append(records, generateCategory(rng, cat, companies, config.Years)...)
	}

	stats.RecordsGenerated = len(records)
	logger.Get().Info(ctx, "generated dataset", logger.Int("records", len(records)))
	return records, nil
}

// generateCategory synthesizes one category's full history. One company is
// boosted so every category has a plausible streak and dominance story.
func generateCategory(rng *rand.Rand, cat model.Category, companies []string, years int) []model.RankingRecord {
	type trajectory struct {
		company string
		base    float64
		drift   float64
	}

	leader := rng.Intn(len(companies))
	trajectories := make([]trajectory, len(companies))
	for i, company := range companies {
		base := baseScoreMin + rng.Float64()*baseScoreRange
		if i == leader {
			base += leaderBonus
		}
		trajectories[i] = trajectory{
			company: company,
			base:    base,
			drift:   (rng.Float64()*2 - 1) * yearlyDrift,
		}
	}

	var records []model.RankingRecord
	for y := 0; y < years; y++ {
		year := strconv.Itoa(firstYear + y)

		type scored struct {
			company string
			score   float64
		}
		row := make([]scored, len(trajectories))
		for i, tr := range trajectories {
			score := tr.base + tr.drift*float64(y) + (rng.Float64()*2-1)*noiseRange
			row[i] = scored{
				company: tr.company,
				score:   math.Round(score*10) / 10,
			}
		}
		sort.Slice(row, func(i, j int) bool {
			if row[i].score != row[j].score {
				return row[i].score > row[j].score
			}
			return row[i].company < row[j].company
		})

		rank := 0
		for i, s := range row {
			// Equal scores share a rank, matching published tables.
			if i == 0 || s.score != row[i-1].score {
				rank = i + 1
			}
			records = append(records, model.RankingRecord{
				Year:     year,
				Category: cat,
				Company:  s.company,
				Score:    s.score,
				Rank:     rank,
			})
		}
	}
	return records
}
