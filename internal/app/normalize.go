package app

import (
	"fmt"

	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/internal/domain/yearkey"
)

// recordKey identifies a record within the dataset. Year labels are kept
// verbatim, so "2014" and "2014-2015" stay distinct entries.
type recordKey struct {
	category model.Category
	year     string
	company  string
}

// normalize validates and deduplicates records at the boundary. Malformed
// input is recovered locally: the record is dropped, a warning is emitted,
// and the run continues over the valid subset.
func normalize(records []model.RankingRecord) ([]model.RankingRecord, []model.Warning) {
	seen := make(map[recordKey]bool, len(records))
	out := make([]model.RankingRecord, 0, len(records))
	var warnings []model.Warning

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnInvalidRecord,
				Message: err.Error(),
				Year:    rec.Year,
				Company: rec.Company,
			})
			continue
		}
		if _, err := yearkey.Parse(rec.Year); err != nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnMalformedYear,
				Message: err.Error(),
				Year:    rec.Year,
				Company: rec.Company,
			})
			continue
		}
		key := recordKey{category: rec.Category, year: rec.Year, company: rec.Company}
		if seen[key] {
			warnings = append(warnings, model.Warning{
				Code: model.WarnDuplicateRecord,
				Message: fmt.Sprintf("duplicate record for %s in %s/%s",
					rec.Company, rec.Category, rec.Year),
				Year:    rec.Year,
				Company: rec.Company,
			})
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}

	return out, warnings
}

// auditScopes checks rank/score consistency within each scope: the record
// holding a better rank must not score below a worse-ranked one. Suspect
// scopes are reported, not dropped, so the caller can see data-quality
// issues without losing results.
func auditScopes(table grouping.Table) []model.Warning {
	var warnings []model.Warning

	for _, cat := range table.Categories() {
		for _, year := range table.Years(cat) {
			recs := table.Records(grouping.Scope{Category: cat, Year: year})
			for i := 1; i < len(recs); i++ {
				if recs[i].Rank > recs[i-1].Rank && recs[i].Score > recs[i-1].Score {
					warnings = append(warnings, model.Warning{
						Code: model.WarnRankOrder,
						Message: fmt.Sprintf("%s (rank %d, score %g) outscores %s (rank %d, score %g) in %s/%s",
							recs[i].Company, recs[i].Rank, recs[i].Score,
							recs[i-1].Company, recs[i-1].Rank, recs[i-1].Score,
							cat, year.Label),
						Year: year.Label,
					})
					break
				}
			}
		}
	}

	return warnings
}
