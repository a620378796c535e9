// Package grouping turns a flat record set into the indexed shape the
// analyzers consume: winner sets per (category, year) scope, rank-ordered
// records per scope, and chronological year sequences per category.
package grouping

import (
	"sort"

	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/internal/domain/yearkey"
)

// Scope identifies one (category, year) ranking table.
type Scope struct {
	Category model.Category
	Year     yearkey.Key
}

// WinnerSet holds the companies sharing the best rank within one scope.
// "Best" is the minimal rank observed there, not a hardcoded 1, so a table
// whose top entry was excluded upstream still has a first place.
type WinnerSet struct {
	// Rank is the minimal rank present in the scope.
	Rank int
	// Companies is sorted ascending for determinism. More than one entry
	// means a tie.
	Companies []string
}

// Contains reports whether company is part of the winner set.
func (w WinnerSet) Contains(company string) bool {
	for _, c := range w.Companies {
		if c == company {
			return true
		}
	}
	return false
}

// Tied reports whether the first place is shared.
func (w WinnerSet) Tied() bool {
	return len(w.Companies) > 1
}

// Table is the immutable grouped view of one record snapshot.
type Table struct {
	winners map[Scope]WinnerSet
	records map[Scope][]model.RankingRecord
	years   map[model.Category][]yearkey.Key
}

// Group indexes records by scope. Pure: the input is not mutated and the
// result holds copies of the slices it sorts. Records whose year label
// cannot be parsed are skipped; the caller reports those upstream.
func Group(records []model.RankingRecord) Table {
	t := Table{
		winners: make(map[Scope]WinnerSet),
		records: make(map[Scope][]model.RankingRecord),
		years:   make(map[model.Category][]yearkey.Key),
	}

	seenYear := make(map[model.Category]map[yearkey.Key]bool)
	for _, rec := range records {
		key, err := yearkey.Parse(rec.Year)
		if err != nil {
			continue
		}
		scope := Scope{Category: rec.Category, Year: key}
		t.records[scope] = append(t.records[scope], rec)

		if seenYear[rec.Category] == nil {
			seenYear[rec.Category] = make(map[yearkey.Key]bool)
		}
		if !seenYear[rec.Category][key] {
			seenYear[rec.Category][key] = true
			t.years[rec.Category] = append(t.years[rec.Category], key)
		}
	}

	for cat := range t.years {
		yearkey.Sort(t.years[cat])
	}

	for scope, recs := range t.records {
		sort.Slice(recs, func(i, j int) bool {
			if recs[i].Rank != recs[j].Rank {
				return recs[i].Rank < recs[j].Rank
			}
			if recs[i].Score != recs[j].Score {
				return recs[i].Score > recs[j].Score
			}
			return recs[i].Company < recs[j].Company
		})

		best := recs[0].Rank
		var companies []string
		for _, r := range recs {
			if r.Rank != best {
				break
			}
			companies = append(companies, r.Company)
		}
		sort.Strings(companies)
		t.winners[scope] = WinnerSet{Rank: best, Companies: companies}
	}

	return t
}

// Winners returns the winner set for a scope.
func (t Table) Winners(scope Scope) (WinnerSet, bool) {
	w, ok := t.winners[scope]
	return w, ok
}

// Records returns the scope's records ordered by rank ascending, score
// descending, company ascending. Callers must not mutate the slice.
func (t Table) Records(scope Scope) []model.RankingRecord {
	return t.records[scope]
}

// Years returns the category's distinct years, chronologically ascending.
// Callers must not mutate the slice.
func (t Table) Years(cat model.Category) []yearkey.Key {
	return t.years[cat]
}

// LatestYear returns the category's most recent year.
func (t Table) LatestYear(cat model.Category) (yearkey.Key, bool) {
	ys := t.years[cat]
	if len(ys) == 0 {
		return yearkey.Key{}, false
	}
	return ys[len(ys)-1], true
}

// Categories returns the observed categories sorted by display form.
func (t Table) Categories() []model.Category {
	cats := make([]model.Category, 0, len(t.years))
	for cat := range t.years {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].String() < cats[j].String()
	})
	return cats
}

// WinnersEver returns every company appearing in any winner set of the
// category, sorted ascending.
func (t Table) WinnersEver(cat model.Category) []string {
	seen := make(map[string]bool)
	for _, year := range t.years[cat] {
		w, ok := t.winners[Scope{Category: cat, Year: year}]
		if !ok {
			continue
		}
		for _, c := range w.Companies {
			seen[c] = true
		}
	}
	companies := make([]string, 0, len(seen))
	for c := range seen {
		companies = append(companies, c)
	}
	sort.Strings(companies)
	return companies
}

// YearCount returns the number of distinct year labels across all
// categories.
func (t Table) YearCount() int {
	seen := make(map[yearkey.Key]bool)
	for _, ys := range t.years {
		for _, y := range ys {
			seen[y] = true
		}
	}
	return len(seen)
}
