package gap_test

import (
	"testing"

	"github.com/TTMK7777/release-creator/internal/domain/gap"
	"github.com/TTMK7777/release-creator/internal/domain/grouping"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(year string, cat model.Category, company string, score float64, rank int) model.RankingRecord {
	return model.RankingRecord{Year: year, Category: cat, Company: company, Score: score, Rank: rank}
}

func TestAnalyze(t *testing.T) {
	overall := model.Overall()

	Convey("Given a leader 3 points ahead", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 71.0, 1),
			rec("2024", overall, "Beta", 68.0, 2),
		})

		Convey("Then a notable gap is flagged", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Kind, ShouldEqual, model.GapNotable)
			So(out[0].Leader, ShouldEqual, "Alpha")
			So(out[0].RunnerUp, ShouldEqual, "Beta")
			So(out[0].Gap, ShouldAlmostEqual, 3.0)
		})
	})

	Convey("Given a margin inside the close band", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.3, 1),
			rec("2024", overall, "Beta", 70.0, 2),
		})

		Convey("Then a close race is flagged with the rounded margin", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Kind, ShouldEqual, model.GapClose)
			So(out[0].Gap, ShouldAlmostEqual, 0.3)
		})
	})

	Convey("Given a margin between the two thresholds", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 71.0, 1),
			rec("2024", overall, "Beta", 70.0, 2),
		})

		Convey("Then nothing is flagged", func() {
			So(gap.Analyze(table, 2.0, 0.5), ShouldBeEmpty)
		})
	})

	Convey("Given distinct ranks with identical scores", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.0, 1),
			rec("2024", overall, "Beta", 70.0, 2),
		})

		Convey("Then the zero margin counts as a close race", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Kind, ShouldEqual, model.GapClose)
			So(out[0].Gap, ShouldEqual, 0.0)
		})
	})

	Convey("Given a tied first place with a runner-up below", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.0, 1),
			rec("2024", overall, "Beta", 70.0, 1),
			rec("2024", overall, "Gamma", 60.0, 2),
		})

		Convey("Then the gap is measured against the runner-up, not the co-leader", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Kind, ShouldEqual, model.GapNotable)
			So(out[0].RunnerUp, ShouldEqual, "Gamma")
			So(out[0].Gap, ShouldAlmostEqual, 10.0)
		})
	})

	Convey("Given every record tied for first place", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.0, 1),
			rec("2024", overall, "Beta", 70.0, 1),
		})

		Convey("Then no gap record is produced", func() {
			So(gap.Analyze(table, 2.0, 0.5), ShouldBeEmpty)
		})
	})

	Convey("Given a scope with a single record", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.0, 1),
		})

		Convey("Then there is no runner-up to compare against", func() {
			So(gap.Analyze(table, 2.0, 0.5), ShouldBeEmpty)
		})
	})

	Convey("Given a leader scoring zero", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 0.0, 1),
			rec("2024", overall, "Beta", 0.0, 2),
		})

		Convey("Then zero is treated as a present, comparable score", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Kind, ShouldEqual, model.GapClose)
		})
	})

	Convey("Given float noise in the raw margin", t, func() {
		table := grouping.Group([]model.RankingRecord{
			rec("2024", overall, "Alpha", 70.1, 1),
			rec("2024", overall, "Beta", 68.1, 2),
		})

		Convey("Then the margin is rounded to one decimal", func() {
			out := gap.Analyze(table, 2.0, 0.5)
			So(len(out), ShouldEqual, 1)
			So(out[0].Gap, ShouldEqual, 2.0)
			So(out[0].Kind, ShouldEqual, model.GapNotable)
		})
	})
}
