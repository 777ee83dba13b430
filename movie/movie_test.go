package movie

import (
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSource(t *testing.T) {
	Convey("ParseSource", t, func() {
		Convey("Empty input yields the default source", func() {
			s, err := ParseSource("")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, OMDb)
		})

		Convey("Names are case-insensitive", func() {
			s, err := ParseSource("TMDb")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, TMDb)
		})

		Convey("Unknown names are rejected", func() {
			_, err := ParseSource("imdb")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDetailJSON(t *testing.T) {
	Convey("Given a detail with absent optional fields", t, func() {
		d := &Detail{
			Title:    "Heat",
			Year:     "1995",
			Source:   TMDb,
			Director: mo.Some("Michael Mann"),
		}

		Convey("Absent fields marshal as null", func() {
			data, err := json.Marshal(d)
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			So(raw["director"], ShouldEqual, "Michael Mann")
			So(raw["awards"], ShouldBeNil)
			So(raw["source"], ShouldEqual, "tmdb")
		})
	})
}

func TestValidYear(t *testing.T) {
	Convey("ValidYear", t, func() {
		So(ValidYear(""), ShouldBeTrue)
		So(ValidYear("1999"), ShouldBeTrue)
		So(ValidYear("99"), ShouldBeFalse)
		So(ValidYear("19999"), ShouldBeFalse)
		So(ValidYear("year"), ShouldBeFalse)
	})
}

func TestPageURL(t *testing.T) {
	Convey("PageURL", t, func() {
		So(PageURL("tt0468569", OMDb), ShouldEqual, "https://www.imdb.com/title/tt0468569/")
		So(PageURL("155", TMDb), ShouldEqual, "https://www.themoviedb.org/movie/155")
	})
}
