// Package streak detects maximal runs of consecutive first places.
//
// Adjacency is positional: two years are consecutive when they sit next to
// each other in the category's chronologically sorted year sequence. A
// single missing year breaks a run; there is no gap tolerance. Runs are
// computed independently per company, so a tied first place credits every
// winner without conflating their histories, and independently per
// category, so wins in different dimensions never merge.
package streak

import (
	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/internal/domain/yearkey"
)

// Detect emits one StreakRecord per maximal run, including runs of length
// one; short runs are filtered later by significance, not here. Output is
// deterministic: categories by display form, companies ascending, runs
// chronological.
func Detect(table grouping.Table) []model.StreakRecord {
	var out []model.StreakRecord

	for _, cat := range table.Categories() {
		years := table.Years(cat)
		if len(years) == 0 {
			continue
		}
		latest := years[len(years)-1]

		for _, company := range table.WinnersEver(cat) {
			out = append(out, runsFor(table, cat, company, years, latest)...)
		}
	}

	return out
}

// runsFor walks one company through one category's year sequence.
func runsFor(
	table grouping.Table,
	cat model.Category,
	company string,
	years []yearkey.Key,
	latest yearkey.Key,
) []model.StreakRecord {
	var (
		out []model.StreakRecord
		run []yearkey.Key
	)

	flush := func() {
		if len(run) == 0 {
			return
		}
		labels := make([]string, len(run))
		for i, y := range run {
			labels[i] = y.Label
		}
		last := run[len(run)-1]
		out = append(out, model.StreakRecord{
			Category:  cat,
			Company:   company,
			StartYear: run[0].Label,
			EndYear:   last.Label,
			Length:    len(run),
			Years:     labels,
			IsCurrent: last == latest,
		})
		run = nil
	}

	for _, year := range years {
		winners, ok := table.Winners(grouping.Scope{Category: cat, Year: year})
		if ok && winners.Contains(company) {
			run = append(run, year)
			continue
		}
		flush()
	}
	flush()

	return out
}
