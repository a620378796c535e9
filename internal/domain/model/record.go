package model

import (
	"fmt"
	"math"
	"strings"
)

// RankingRecord is one company's result within a (category, year) scope.
// Records arrive normalized: company aliases are already resolved upstream
// and the year label is kept verbatim for display. Immutable after creation.
type RankingRecord struct {
	// Year is the survey year label, either a plain year ("2024") or a
	// multi-year span ("2014-2015"). Ordering is derived by yearkey.
	Year string `json:"year"`

	Category Category `json:"category"`

	// Company is the normalized company identifier.
	Company string `json:"company"`

	// Score is the satisfaction score. Zero is a valid score.
	Score float64 `json:"score"`

	// Rank is the 1-based position within (category, year). Ties share
	// the same rank value.
	Rank int `json:"rank"`
}

// NewRecord constructs a RankingRecord, enforcing invariants at the
// boundary so malformed data never reaches the analyzers.
func NewRecord(year string, category Category, company string, score float64, rank int) (RankingRecord, error) {
	r := RankingRecord{
		Year:     strings.TrimSpace(year),
		Category: category,
		Company:  strings.TrimSpace(company),
		Score:    score,
		Rank:     rank,
	}
	if err := r.Validate(); err != nil {
		return RankingRecord{}, err
	}
	return r, nil
}

// Validate reports the first violated invariant, if any.
func (r RankingRecord) Validate() error {
	if strings.TrimSpace(r.Year) == "" {
		return fmt.Errorf("%w: year label is empty", ErrInvalidRecord)
	}
	if err := r.Category.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Company) == "" {
		return fmt.Errorf("%w: company is empty", ErrInvalidRecord)
	}
	if r.Rank < 1 {
		return fmt.Errorf("%w: rank must be >= 1, got %d", ErrInvalidRecord, r.Rank)
	}
	if math.IsNaN(r.Score) || math.IsInf(r.Score, 0) {
		return fmt.Errorf("%w: score must be finite", ErrInvalidRecord)
	}
	return nil
}
