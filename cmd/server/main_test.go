package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Given startup arguments", t, func() {
		Convey("An unknown log level should exit with 1", func() {
			So(run([]string{"--log-level", "chatty"}), ShouldEqual, 1)
		})

		Convey("An invalid timezone override should exit with 1", func() {
			So(run([]string{"--local-timezone", "Nowhere/Zone"}), ShouldEqual, 1)
		})

		Convey("An unknown flag should exit with 1", func() {
			So(run([]string{"--bogus"}), ShouldEqual, 1)
		})

		Convey("--help should exit cleanly", func() {
			So(run([]string{"--help"}), ShouldEqual, 0)
		})
	})
}
