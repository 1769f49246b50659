package rates_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/rates"
)

func TestOnBase(t *testing.T) {
	Convey("Given cleaned rows", t, func() {
		Convey("When the denominators are positive", func() {
			rows := []model.Row{
				{ID: "p1", AB: 100, H: 30, BB: 10, HBP: 2, SF: 3, SH: 1},
			}
			rates.OnBase(rows)

			Convey("Then obp and pab follow the on-base formulas", func() {
				obp, ok := rows[0].OBP.Float()
				So(ok, ShouldBeTrue)
				So(obp, ShouldAlmostEqual, 42.0/112.0, 1e-12)

				pab, ok := rows[0].PAB.Float()
				So(ok, ShouldBeTrue)
				So(pab, ShouldAlmostEqual, 46.0/116.0, 1e-12)
			})
		})

		Convey("When a row never reached the plate", func() {
			rows := []model.Row{
				{ID: "p1", AB: 0, H: 0, BB: 0, HBP: 0, SF: 0, SH: 0, G: 2},
			}
			rates.OnBase(rows)

			Convey("Then the derived rates are missing and counting fields stand", func() {
				So(rows[0].OBP.IsMissing(), ShouldBeTrue)
				So(rows[0].PAB.IsMissing(), ShouldBeTrue)
				So(rows[0].G, ShouldEqual, 2)
			})
		})
	})
}

func TestCareer(t *testing.T) {
	Convey("Given career totals", t, func() {
		Convey("When at-bats are positive", func() {
			totals := []model.CareerTotals{
				{PlayerID: "p1", AB: 200, H: 60, HR: 10, SB: 8, SO: 40, BB: 20, HBP: 4, SH: 2, SF: 2},
			}
			rates.Career(totals)
			tt := totals[0]

			Convey("Then all eight rates are attached", func() {
				obp, _ := tt.OBP.Float()
				So(obp, ShouldAlmostEqual, 84.0/224.0, 1e-12)

				pab, _ := tt.PAB.Float()
				So(pab, ShouldAlmostEqual, 88.0/228.0, 1e-12)

				hrp, _ := tt.HRP.Float()
				So(hrp, ShouldAlmostEqual, 10.0/200.0, 1e-12)

				hp, _ := tt.HP.Float()
				So(hp, ShouldAlmostEqual, 60.0/200.0, 1e-12)

				sbp, _ := tt.SBP.Float()
				So(sbp, ShouldAlmostEqual, 8.0/200.0, 1e-12)

				sop, _ := tt.SOP.Float()
				So(sop, ShouldAlmostEqual, 40.0/200.0, 1e-12)

				sopa, _ := tt.SOPA.Float()
				So(sopa, ShouldAlmostEqual, 40.0/228.0, 1e-12)

				bbp, _ := tt.BBP.Float()
				So(bbp, ShouldAlmostEqual, 20.0/200.0, 1e-12)
			})
		})

		Convey("When a career has zero at-bats", func() {
			totals := []model.CareerTotals{
				{PlayerID: "p2", AB: 0, SO: 5, BB: 3, G: 12},
			}
			rates.Career(totals)
			tt := totals[0]

			Convey("Then per-at-bat rates are missing, plate-appearance rates are not", func() {
				So(tt.HRP.IsMissing(), ShouldBeTrue)
				So(tt.HP.IsMissing(), ShouldBeTrue)
				So(tt.SBP.IsMissing(), ShouldBeTrue)
				So(tt.SOP.IsMissing(), ShouldBeTrue)
				So(tt.BBP.IsMissing(), ShouldBeTrue)

				sopa, ok := tt.SOPA.Float()
				So(ok, ShouldBeTrue)
				So(sopa, ShouldAlmostEqual, 5.0/3.0, 1e-12)
			})

			Convey("Then counting fields are untouched", func() {
				So(tt.G, ShouldEqual, 12)
				So(tt.SO, ShouldEqual, 5)
			})
		})
	})
}
