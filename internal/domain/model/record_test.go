package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/TTMK7777/release-creator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRecord(t *testing.T) {
	Convey("Given record construction at the boundary", t, func() {
		Convey("When all fields are valid", func() {
			r, err := model.NewRecord(" 2024 ", model.Overall(), " Alpha ", 71.5, 1)
			So(err, ShouldBeNil)

			Convey("Then fields are trimmed", func() {
				So(r.Year, ShouldEqual, "2024")
				So(r.Company, ShouldEqual, "Alpha")
			})
		})

		Convey("When the score is zero", func() {
			_, err := model.NewRecord("2024", model.Overall(), "Alpha", 0, 1)

			Convey("Then zero is a valid score", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the year is blank", func() {
			_, err := model.NewRecord("  ", model.Overall(), "Alpha", 70, 1)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("When the company is blank", func() {
			_, err := model.NewRecord("2024", model.Overall(), "", 70, 1)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("When the rank is below one", func() {
			_, err := model.NewRecord("2024", model.Overall(), "Alpha", 70, 0)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("When the score is not finite", func() {
			_, err := model.NewRecord("2024", model.Overall(), "Alpha", math.NaN(), 1)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)

			_, err = model.NewRecord("2024", model.Overall(), "Alpha", math.Inf(1), 1)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})
	})
}

func TestCategory(t *testing.T) {
	Convey("Given category constructors", t, func() {
		Convey("Then the overall category validates without a name", func() {
			So(model.Overall().Validate(), ShouldBeNil)
			So(model.Overall().String(), ShouldEqual, "overall")
		})

		Convey("Then named kinds require a name", func() {
			So(model.EvaluationItem("support").Validate(), ShouldBeNil)
			So(model.EvaluationItem("").Validate(), ShouldNotBeNil)
			So(model.Department("sales").Validate(), ShouldBeNil)
			So(model.Department("  ").Validate(), ShouldNotBeNil)
		})

		Convey("Then an overall category with a name is rejected", func() {
			c := model.Category{Kind: model.KindOverall, Name: "oops"}
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("Then an unknown kind is rejected", func() {
			c := model.Category{Kind: "sector", Name: "x"}
			So(errors.Is(c.Validate(), model.ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("Then the display form embeds the name", func() {
			So(model.EvaluationItem("fees").String(), ShouldEqual, "evaluation_item/fees")
			So(model.Department("sales").String(), ShouldEqual, "department/sales")
		})

		Convey("Then categories are usable as map keys", func() {
			m := map[model.Category]int{
				model.Overall():              1,
				model.EvaluationItem("fees"): 2,
				model.Department("fees"):     3,
			}
			So(m[model.EvaluationItem("fees")], ShouldEqual, 2)
			So(m[model.Department("fees")], ShouldEqual, 3)
		})
	})
}
