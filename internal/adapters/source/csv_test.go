package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tmcrae/batstat/internal/adapters/source"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batting.csv")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVLoader(t *testing.T) {
	Convey("Given a CSV table with an accidental index column", t, func() {
		path := writeTempCSV(t, `Unnamed: 0,id,team,lg,year,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf
0,p1,NYA,AL,1990,10,30,8,1,4,2,6,3,1,0,1
1,p2,CHN,NL,1991,12,25,6,0,3,1,5,2,0,1,0
`)

		loader, err := source.Open(path)
		So(err, ShouldBeNil)

		rows, err := loader.Load(context.Background())

		Convey("Then the index column is discarded and rows decode by name", func() {
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].ID, ShouldEqual, "p1")
			So(rows[0].League, ShouldEqual, "AL")
			ab, ok := rows[0].AB.Float()
			So(ok, ShouldBeTrue)
			So(ab, ShouldEqual, 30)
			So(rows[1].Team, ShouldEqual, "CHN")
		})
	})

	Convey("Given unparseable and blank numeric cells", t, func() {
		path := writeTempCSV(t, `id,team,lg,year,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf
p1,NYA,AL,1990,10,thirty,8,1,4,2,6,3,1,0,1
p2,CHN,NL,1991,12,,6,0,3,1,5,2,0,1,0
`)

		loader, err := source.Open(path)
		So(err, ShouldBeNil)

		rows, err := loader.Load(context.Background())

		Convey("Then bad cells coerce to missing instead of erroring", func() {
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].AB.IsMissing(), ShouldBeTrue)
			So(rows[1].AB.IsMissing(), ShouldBeTrue)
			So(rows[0].Complete(), ShouldBeFalse)
		})
	})

	Convey("Given a short (ragged) row", t, func() {
		path := writeTempCSV(t, `id,team,lg,year,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf
p1,NYA,AL,1990,10
`)

		loader, err := source.Open(path)
		So(err, ShouldBeNil)

		rows, err := loader.Load(context.Background())

		Convey("Then the absent cells read as missing", func() {
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 1)
			So(rows[0].ID, ShouldEqual, "p1")
			So(rows[0].AB.IsMissing(), ShouldBeTrue)
		})
	})

	Convey("Given an empty file", t, func() {
		path := writeTempCSV(t, "")

		loader, err := source.Open(path)
		So(err, ShouldBeNil)

		_, err = loader.Load(context.Background())

		Convey("Then the missing header is an error", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a missing file", t, func() {
		loader, err := source.Open(filepath.Join(t.TempDir(), "nope.csv"))
		So(err, ShouldBeNil)

		_, err = loader.Load(context.Background())

		Convey("Then the open failure propagates", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a cancelled context", t, func() {
		path := writeTempCSV(t, "id\n")
		loader, err := source.Open(path)
		So(err, ShouldBeNil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = loader.Load(ctx)

		Convey("Then loading stops before touching the file", func() {
			So(err, ShouldEqual, context.Canceled)
		})
	})
}

func TestOpenFormats(t *testing.T) {
	Convey("Given format resolution", t, func() {
		Convey("When the format is forced", func() {
			l, err := source.Open("table.data", source.WithFormat(source.FormatCSV))
			So(err, ShouldBeNil)
			So(l, ShouldHaveSameTypeAs, &source.CSVLoader{})
		})

		Convey("When auto-detecting by extension", func() {
			l, err := source.Open("table.xlsx")
			So(err, ShouldBeNil)
			So(l, ShouldHaveSameTypeAs, &source.XLSXLoader{})

			l, err = source.Open("table.csv")
			So(err, ShouldBeNil)
			So(l, ShouldHaveSameTypeAs, &source.CSVLoader{})
		})

		Convey("When the format is unknown", func() {
			_, err := source.Open("table.data", source.WithFormat(source.Format("parquet")))
			So(err, ShouldEqual, source.ErrUnknownFormat)
		})
	})
}
