package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/cinemcp/cinemcp/key"
	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func hits() []*movie.Hit {
	return []*movie.Hit{
		{Title: "The Dark Knight", Year: "2008", ID: "tt0468569", Poster: "https://img/1.jpg", Source: movie.OMDb},
		{Title: "Batman Begins", Year: "2005", ID: "272", Poster: movie.NotAvailable, Source: movie.TMDb},
	}
}

func TestSearch(t *testing.T) {
	Convey("Given the emoji icon variant", t, func() {
		viper.Set(key.IconsVariant, "emoji")
		Reset(func() { viper.Set(key.IconsVariant, "emoji") })

		Convey("When nothing was found", func() {
			So(Search("Nope", "", nil), ShouldEqual, `No movies found with title "Nope".`)
			So(Search("Nope", "1999", nil), ShouldEqual, `No movies found with title "Nope" from year 1999.`)
		})

		Convey("When hits exist", func() {
			out := Search("Batman", "", hits())

			Convey("It numbers them with ID and source", func() {
				So(out, ShouldStartWith, "🎬 **Found 2 movies for \"Batman\":**\n\n")
				So(out, ShouldContainSubstring, "1. **The Dark Knight** (2008)\n   - ID: tt0468569\n   - Source: OMDB\n   - Poster: https://img/1.jpg\n\n")
				So(out, ShouldContainSubstring, "2. **Batman Begins** (2005)\n   - ID: 272\n   - Source: TMDB\n\n")
			})

			Convey("It skips the N/A poster", func() {
				So(strings.Count(out, "Poster:"), ShouldEqual, 1)
			})

			Convey("It ends with the details hint", func() {
				So(out, ShouldEndWith, "\n💡 *Use \"get_movie_details\" with the ID for more information.*")
			})
		})

		Convey("With the plain variant decorations disappear", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Search("Batman", "", hits()), ShouldStartWith, "**Found 2 movies")
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given the emoji icon variant", t, func() {
		viper.Set(key.IconsVariant, "emoji")

		Convey("An absent record renders the not-found line", func() {
			out := Detail("tt000", movie.TMDb, mo.None[*movie.Detail]())
			So(out, ShouldEqual, `❌ No details found for movie with ID "tt000" in TMDB.`)
		})

		Convey("A full record", func() {
			d := &movie.Detail{
				Title:     "The Dark Knight",
				Year:      "2008",
				Plot:      "Batman faces the Joker.",
				Genre:     "Action, Crime, Drama",
				Rating:    "9.0",
				Poster:    movie.NotAvailable,
				Source:    movie.OMDb,
				Director:  mo.Some("Christopher Nolan"),
				Actors:    mo.Some("Christian Bale, Heath Ledger"),
				Runtime:   mo.Some("152 min"),
				Language:  mo.Some("English"),
				Country:   mo.Some(movie.NotAvailable),
				Awards:    mo.Some(movie.NotAvailable),
				BoxOffice: mo.Some("$534,858,444"),
				IMDbID:    mo.Some("tt0468569"),
			}
			out := Detail(d.IMDbID.MustGet(), d.Source, mo.Some(d))

			Convey("It renders the required lines", func() {
				So(out, ShouldStartWith, "🎬 **The Dark Knight** (2008)\n\n📝 **Plot:** Batman faces the Joker.\n\n")
				So(out, ShouldContainSubstring, "⭐ **Rating:** 9.0\n")
				So(out, ShouldContainSubstring, "**Runtime:** 152 min\n")
			})

			Convey("It keeps a sentinel country but hides sentinel awards", func() {
				So(out, ShouldContainSubstring, "**Country:** N/A\n")
				So(out, ShouldNotContainSubstring, "Awards")
				So(out, ShouldContainSubstring, "💰 **Box Office:** $534,858,444\n")
			})

			Convey("It ends with the source and no poster", func() {
				So(out, ShouldContainSubstring, "🔗 **IMDB ID:** tt0468569\n")
				So(out, ShouldEndWith, "\n📊 **Source:** OMDB")
			})
		})

		Convey("A record without optional fields", func() {
			d := &movie.Detail{Title: "X", Year: "2001", Poster: "https://img/x.jpg", Source: movie.TMDb}
			out := Detail("1", movie.TMDb, mo.Some(d))

			So(out, ShouldContainSubstring, "**Runtime:** N/A\n")
			So(out, ShouldNotContainSubstring, "Director")
			So(out, ShouldNotContainSubstring, "IMDB ID")
			So(out, ShouldEndWith, "\n\n🖼️ **Poster:** https://img/x.jpg")
		})
	})
}

func TestLists(t *testing.T) {
	Convey("Given the emoji icon variant", t, func() {
		viper.Set(key.IconsVariant, "emoji")

		Convey("Recommendations name the genre or fall back to popular", func() {
			So(Recommendations("action", hits()), ShouldStartWith, "🎯 **Movie recommendations for action:**\n\n")
			So(Recommendations("", hits()), ShouldStartWith, "🎯 **Movie recommendations (popular):**\n\n")
			So(Recommendations("", hits()), ShouldContainSubstring, "   - TMDb ID: 272\n")
			So(Recommendations("", hits()), ShouldEndWith, `source "tmdb" for more information.*`)
		})

		Convey("Empty recommendations", func() {
			So(Recommendations("", nil), ShouldEqual, "❌ No recommendations found.")
			So(Recommendations("western", nil), ShouldEqual, `❌ No recommendations found for genre "western".`)
		})

		Convey("Popular", func() {
			So(Popular(hits()), ShouldStartWith, "🔥 **Most popular movies this week:**\n\n1. **The Dark Knight**")
			So(Popular(nil), ShouldEqual, "❌ Could not get popular movies at this time.")
		})

		Convey("Failure", func() {
			So(Failure("searching movies", errors.New("boom")), ShouldEqual, "❌ Error searching movies: boom")
			So(Failure("getting details", nil), ShouldEqual, "❌ Error getting details: Unknown error")
		})
	})
}
