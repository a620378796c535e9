// Package movement compares a category's two most recent years: rank
// climbs and drops past a shift threshold, first-place changeovers, and
// companies debuting in the latest year.
package movement

import (
	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Shifts reports companies whose rank moved by at least shiftThreshold
// positions between the previous and latest year of a category, plus a
// lead-change record for each latest-year winner that was not a winner the
// year before. Categories with fewer than two years yield nothing.
func Shifts(table grouping.Table, shiftThreshold int) []model.MovementRecord {
	var out []model.MovementRecord

	for _, cat := range table.Categories() {
		years := table.Years(cat)
		if len(years) < 2 {
			continue
		}
		latest, prev := years[len(years)-1], years[len(years)-2]
		latestScope := grouping.Scope{Category: cat, Year: latest}
		prevScope := grouping.Scope{Category: cat, Year: prev}

		prevRanks := make(map[string]int)
		for _, rec := range table.Records(prevScope) {
			prevRanks[rec.Company] = rec.Rank
		}

		for _, rec := range table.Records(latestScope) {
			fromRank, present := prevRanks[rec.Company]
			if !present {
				continue
			}
			var kind model.MovementKind
			switch {
			case fromRank-rec.Rank >= shiftThreshold:
				kind = model.MovementClimb
			case rec.Rank-fromRank >= shiftThreshold:
				kind = model.MovementDrop
			default:
				continue
			}
			out = append(out, model.MovementRecord{
				Category: cat,
				Company:  rec.Company,
				Kind:     kind,
				FromYear: prev.Label,
				ToYear:   latest.Label,
				FromRank: fromRank,
				ToRank:   rec.Rank,
			})
		}

		out = append(out, leadChanges(table, cat, latestScope, prevScope, prevRanks)...)
	}

	return out
}

// leadChanges emits one record per latest-year winner absent from the
// previous year's winner set.
func leadChanges(
	table grouping.Table,
	cat model.Category,
	latestScope, prevScope grouping.Scope,
	prevRanks map[string]int,
) []model.MovementRecord {
	current, ok := table.Winners(latestScope)
	if !ok {
		return nil
	}
	previous, ok := table.Winners(prevScope)
	if !ok {
		return nil
	}

	var out []model.MovementRecord
	for _, company := range current.Companies {
		if previous.Contains(company) {
			continue
		}
		out = append(out, model.MovementRecord{
			Category: cat,
			Company:  company,
			Kind:     model.MovementLeadChange,
			FromYear: prevScope.Year.Label,
			ToYear:   latestScope.Year.Label,
			FromRank: prevRanks[company], // 0 when absent last year
			ToRank:   current.Rank,
		})
	}
	return out
}

// Debuts reports companies whose first appearance in a category falls in
// its latest measured year. A category needs at least two years of data,
// otherwise every company would trivially be a debut.
func Debuts(table grouping.Table) []model.DebutRecord {
	var out []model.DebutRecord

	for _, cat := range table.Categories() {
		years := table.Years(cat)
		if len(years) < 2 {
			continue
		}
		latest := years[len(years)-1]

		known := make(map[string]bool)
		for _, year := range years[:len(years)-1] {
			for _, rec := range table.Records(grouping.Scope{Category: cat, Year: year}) {
				known[rec.Company] = true
			}
		}

		for _, rec := range table.Records(grouping.Scope{Category: cat, Year: latest}) {
			if known[rec.Company] {
				continue
			}
			out = append(out, model.DebutRecord{
				Category: cat,
				Company:  rec.Company,
				Year:     latest.Label,
				Rank:     rec.Rank,
				Score:    rec.Score,
			})
		}
	}

	return out
}
