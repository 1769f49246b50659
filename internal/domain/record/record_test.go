package record_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/record"
	"github.com/tmcrae/batstat/internal/domain/stat"
)

func TestFind(t *testing.T) {
	Convey("Given career totals with rates attached", t, func() {
		totals := []model.CareerTotals{
			{PlayerID: "p1", HR: 40, H: 120, G: 300, OBP: stat.Of(0.38)},
			{PlayerID: "p2", HR: 25, H: 150, G: 280, OBP: stat.Of(0.41)},
			{PlayerID: "p3", HR: 40, H: 90, G: 310, OBP: stat.Missing()},
		}

		Convey("When ranking a counting metric", func() {
			e := record.Find(totals, "h")

			Convey("Then the highest sum wins", func() {
				So(e.ID, ShouldNotBeNil)
				So(*e.ID, ShouldEqual, "p2")
				v, ok := e.Value.Float()
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 150)
			})
		})

		Convey("When two players are tied at the maximum", func() {
			e := record.Find(totals, "hr")

			Convey("Then the smaller id wins the tie", func() {
				So(e.ID, ShouldNotBeNil)
				So(*e.ID, ShouldEqual, "p1")
				v, _ := e.Value.Float()
				So(v, ShouldEqual, 40)
			})

			Convey("And reversing the input order changes nothing", func() {
				reversed := []model.CareerTotals{totals[2], totals[1], totals[0]}
				e2 := record.Find(reversed, "hr")
				So(*e2.ID, ShouldEqual, "p1")
			})
		})

		Convey("When a metric value is missing for a player", func() {
			e := record.Find(totals, "obp")

			Convey("Then that player is skipped", func() {
				So(e.ID, ShouldNotBeNil)
				So(*e.ID, ShouldEqual, "p2")
			})
		})

		Convey("When every value for a metric is missing", func() {
			bare := []model.CareerTotals{
				{PlayerID: "p1"},
				{PlayerID: "p2"},
			}
			e := record.Find(bare, "obp")

			Convey("Then the entry has no holder and a missing value", func() {
				So(e.ID, ShouldBeNil)
				So(e.Value.IsMissing(), ShouldBeTrue)
			})
		})

		Convey("When the metric name is unknown", func() {
			e := record.Find(totals, "era")

			Convey("Then the entry has no holder", func() {
				So(e.ID, ShouldBeNil)
				So(e.Value.IsMissing(), ShouldBeTrue)
			})
		})

		Convey("When the qualifying set is empty", func() {
			e := record.Find(nil, "hr")

			Convey("Then the entry has no holder", func() {
				So(e.ID, ShouldBeNil)
				So(e.Value.IsMissing(), ShouldBeTrue)
			})
		})
	})
}

func TestAll(t *testing.T) {
	Convey("Given any set of career totals", t, func() {
		totals := []model.CareerTotals{
			{PlayerID: "p1", HR: 10, H: 50, SB: 5, SO: 30, BB: 20, G: 100,
				OBP: stat.Of(0.3), PAB: stat.Of(0.31), HRP: stat.Of(0.05),
				HP: stat.Of(0.25), SBP: stat.Of(0.02), SOP: stat.Of(0.15),
				SOPA: stat.Of(0.13), BBP: stat.Of(0.1)},
		}

		entries := record.All(totals)

		Convey("Then exactly the fourteen fixed metrics are present", func() {
			So(entries, ShouldHaveLength, 14)
			for _, m := range record.Metrics {
				_, ok := entries[m]
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then each entry names the single qualifying player", func() {
			for _, e := range entries {
				So(e.ID, ShouldNotBeNil)
				So(*e.ID, ShouldEqual, "p1")
			}
		})
	})
}
