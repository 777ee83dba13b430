package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClosestGenre(t *testing.T) {
	Convey("Given a misspelled genre", t, func() {
		Convey("It suggests the nearest known genre", func() {
			So(closestGenre("horor"), ShouldEqual, "horror")
			So(closestGenre("Comdy"), ShouldEqual, "comedy")
			So(closestGenre("westren"), ShouldEqual, "western")
		})
	})
}
