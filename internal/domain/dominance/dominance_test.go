package dominance_test

import (
	"testing"

	"github.com/TTMK7777/release-creator/internal/domain/dominance"
	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(year string, cat model.Category, company string, score float64, rank int) model.RankingRecord {
	return model.RankingRecord{Year: year, Category: cat, Company: company, Score: score, Rank: rank}
}

func TestAnalyze(t *testing.T) {
	overall := model.Overall()

	Convey("Given a company winning three of five years", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2020", overall, "Alpha", 70, 1),
			rec("2021", overall, "Alpha", 71, 1),
			rec("2022", overall, "Beta", 72, 1),
			rec("2023", overall, "Alpha", 73, 1),
			rec("2024", overall, "Beta", 74, 1),
		})

		Convey("When the threshold is 0.6", func() {
			out := dominance.Analyze(table, 0.6)

			Convey("Then the 60% winner qualifies and the 40% winner does not", func() {
				So(len(out), ShouldEqual, 1)
				So(out[0].Company, ShouldEqual, "Alpha")
				So(out[0].WinCount, ShouldEqual, 3)
				So(out[0].EligibleYears, ShouldEqual, 5)
				So(out[0].Ratio, ShouldAlmostEqual, 0.6)
			})
		})

		Convey("When the threshold is lowered to 0.4", func() {
			out := dominance.Analyze(table, 0.4)

			Convey("Then both winners qualify, sorted by company", func() {
				So(len(out), ShouldEqual, 2)
				So(out[0].Company, ShouldEqual, "Alpha")
				So(out[1].Company, ShouldEqual, "Beta")
			})
		})
	})

	Convey("Given a late entrant with a perfect record", t, func() {
		// Gamma only has data for 2024 but the category spans 3 years.
		table := grouping.Group([]model.RankingRecord{
			rec("2022", overall, "Alpha", 70, 1),
			rec("2023", overall, "Alpha", 71, 1),
			rec("2024", overall, "Gamma", 75, 1),
			rec("2024", overall, "Alpha", 72, 2),
		})

		Convey("Then the denominator is the category's full year span", func() {
			out := dominance.Analyze(table, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Company, ShouldEqual, "Alpha")
			So(out[0].Ratio, ShouldAlmostEqual, 2.0/3.0)
		})
	})

	Convey("Given a tied first place", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2023", overall, "Alpha", 70, 1),
			rec("2023", overall, "Beta", 70, 1),
			rec("2024", overall, "Alpha", 71, 1),
		})

		Convey("Then every tied winner collects a win", func() {
			out := dominance.Analyze(table, 0.5)
			So(len(out), ShouldEqual, 2)
			So(out[0].Company, ShouldEqual, "Alpha")
			So(out[0].Ratio, ShouldAlmostEqual, 1.0)
			So(out[1].Company, ShouldEqual, "Beta")
			So(out[1].Ratio, ShouldAlmostEqual, 0.5)
		})
	})

	Convey("Given an empty table", t, func() {
		So(dominance.Analyze(grouping.Group(nil), 0.6), ShouldBeEmpty)
	})
}
