package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "movie", "movies"), ShouldEqual, "1 movie")
		So(Quantify(2, "movie", "movies"), ShouldEqual, "2 movies")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth falls back without a terminal", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore swallows the error", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("ignored")
		})
		So(called, ShouldBeTrue)
	})
}
