package config_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tmcrae/batstat/internal/config"
)

func TestNew(t *testing.T) {
	Convey("Given default configuration", t, func() {
		cfg := config.New(context.Background())

		Convey("Then the defaults match the documented contract", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.InputPath, ShouldEqual, "baseball.csv")
			So(cfg.InputFormat, ShouldEqual, "auto")
			So(cfg.MinAtBats, ShouldEqual, 50)
			So(cfg.Addr, ShouldEqual, ":8480")
			So(cfg.Pretty, ShouldBeFalse)
		})
	})
}
