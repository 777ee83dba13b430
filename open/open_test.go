package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a URL", t, func() {
		const url = "https://www.imdb.com/title/tt0468569/"

		Convey("Linux uses xdg-open", func() {
			cmd, ok := Command("linux", url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("Darwin uses open", func() {
			cmd, ok := Command("darwin", url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})

		Convey("Unknown systems are unsupported", func() {
			_, ok := Command("plan9", url)
			So(ok, ShouldBeFalse)
		})
	})
}
