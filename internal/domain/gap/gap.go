// Package gap compares first- and second-place scores per (category, year)
// scope and flags both unusually large leads and near-ties.
package gap

import (
	"math"

	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Analyze emits a GapRecord for every scope where the leader's margin over
// the runner-up is either notable (>= notableThreshold) or a close race
// (<= closeThreshold). The runner-up is the best record at a strictly worse
// rank than first place, so companies tied for the lead are never compared
// against each other: a tie is a streak and dominance signal, not a gap
// signal. Scopes without a runner-up produce nothing. A score of zero is a
// present, comparable value.
func Analyze(table grouping.Table, notableThreshold, closeThreshold float64) []model.GapRecord {
	var out []model.GapRecord

	for _, cat := range table.Categories() {
		for _, year := range table.Years(cat) {
			scope := grouping.Scope{Category: cat, Year: year}
			recs := table.Records(scope)
			if len(recs) < 2 {
				continue
			}

			leader := recs[0]
			var runnerUp model.RankingRecord
			found := false
			for _, r := range recs[1:] {
				if r.Rank > leader.Rank {
					runnerUp = r
					found = true
					break
				}
			}
			if !found {
				continue
			}
			// Survey scores carry one decimal; rounding keeps the
			// published margin free of float noise.
			margin := math.Round((leader.Score-runnerUp.Score)*10) / 10

			var kind model.GapKind
			switch {
			case margin >= notableThreshold:
				kind = model.GapNotable
			case margin <= closeThreshold:
				kind = model.GapClose
			default:
				continue
			}

			out = append(out, model.GapRecord{
				Category:      cat,
				Year:          year.Label,
				Kind:          kind,
				Leader:        leader.Company,
				RunnerUp:      runnerUp.Company,
				LeaderScore:   leader.Score,
				RunnerUpScore: runnerUp.Score,
				Gap:           margin,
			})
		}
	}

	return out
}
