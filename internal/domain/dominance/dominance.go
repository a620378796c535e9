// Package dominance aggregates win frequency per company and category into
// a dominance ratio across the full observed year range.
package dominance

import (
	"sort"

	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Analyze reports every company/category pair whose win ratio meets the
// threshold. The denominator is the number of distinct years the category
// has data, not the years the company was present, so a short-lived entrant
// with a perfect record does not outrank a sustained leader. Pairs below
// the threshold are simply not dominant, not an error.
func Analyze(table grouping.Table, threshold float64) []model.DominanceRecord {
	var out []model.DominanceRecord

	for _, cat := range table.Categories() {
		years := table.Years(cat)
		if len(years) == 0 {
			continue
		}
		eligible := len(years)

		wins := make(map[string]int)
		for _, year := range years {
			winners, ok := table.Winners(grouping.Scope{Category: cat, Year: year})
			if !ok {
				continue
			}
			for _, company := range winners.Companies {
				wins[company]++
			}
		}

		companies := make([]string, 0, len(wins))
		for company := range wins {
			companies = append(companies, company)
		}
		sort.Strings(companies)

		for _, company := range companies {
			ratio := float64(wins[company]) / float64(eligible)
			if ratio < threshold {
				continue
			}
			out = append(out, model.DominanceRecord{
				Category:      cat,
				Company:       company,
				WinCount:      wins[company],
				EligibleYears: eligible,
				Ratio:         ratio,
			})
		}
	}

	return out
}
