// Package repository defines the ranking dataset store interface and its
// in-memory implementation.
package repository

import (
	"context"

	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Store accumulates ranking records between analysis runs. Ingestion is
// idempotent per (category, year, company); the analysis engine itself
// never touches the store, it only consumes snapshots.
type Store interface {
	// Add ingests a batch, returning how many records were stored and a
	// warning per rejected record (invalid or duplicate).
	Add(ctx context.Context, records []model.RankingRecord) (int, []model.Warning)

	// Snapshot returns a copy of the current dataset.
	Snapshot(ctx context.Context) []model.RankingRecord

	// Count returns the number of stored records.
	Count(ctx context.Context) int

	// Clear empties the dataset.
	Clear(ctx context.Context)
}
