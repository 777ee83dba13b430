package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cinemcp/cinemcp/movie"
	. "github.com/smartystreets/goconvey/convey"
)

// stub serves body for every request and records the last query.
func stub(status int, body string) (*httptest.Server, *url.Values) {
	var last url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return srv, &last
}

const searchBody = `{
	"Search": [
		{"Title": "Dune", "Year": "2021", "imdbID": "tt1160419", "Type": "movie", "Poster": "https://m.media-amazon.com/dune.jpg"},
		{"Title": "Dune", "Year": "1984", "imdbID": "tt0087182", "Type": "movie", "Poster": "N/A"}
	],
	"totalResults": "2",
	"Response": "True"
}`

const detailBody = `{
	"Title": "The Dark Knight", "Year": "2008", "Runtime": "152 min", "Genre": "Action, Crime, Drama",
	"Director": "Christopher Nolan", "Actors": "Christian Bale, Heath Ledger, Aaron Eckhart",
	"Plot": "When the menace known as the Joker wreaks havoc...", "Language": "English, Mandarin",
	"Country": "United States, United Kingdom", "Awards": "Won 2 Oscars", "Poster": "N/A",
	"imdbRating": "9.0", "imdbID": "tt0468569", "Type": "movie", "Response": "True"
}`

func TestSearch(t *testing.T) {
	Convey("Given an OMDb stub with two hits", t, func() {
		srv, query := stub(http.StatusOK, searchBody)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It maps every hit to an OMDb search record", func() {
			hits, err := client.Search(context.Background(), "Dune", "")
			So(err, ShouldBeNil)
			So(hits, ShouldHaveLength, 2)
			So(hits[0].ID, ShouldEqual, "tt1160419")
			So(hits[0].MediaType, ShouldEqual, "movie")
			So(hits[1].Poster, ShouldEqual, movie.NotAvailable)
			for _, h := range hits {
				So(h.Source, ShouldEqual, movie.OMDb)
			}
		})

		Convey("It sends the title, type and key", func() {
			_, _ = client.Search(context.Background(), "Dune", "")
			So(query.Get("s"), ShouldEqual, "Dune")
			So(query.Get("type"), ShouldEqual, "movie")
			So(query.Get("apikey"), ShouldEqual, "key")
			So(query.Has("y"), ShouldBeFalse)
		})

		Convey("It narrows by year when given", func() {
			_, _ = client.Search(context.Background(), "Dune", "1984")
			So(query.Get("y"), ShouldEqual, "1984")
		})
	})

	Convey("Given an OMDb stub answering no result", t, func() {
		srv, _ := stub(http.StatusOK, `{"Response": "False", "Error": "Movie not found!"}`)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It returns an empty list without error", func() {
			hits, err := client.Search(context.Background(), "zzzz", "")
			So(err, ShouldBeNil)
			So(hits, ShouldBeEmpty)
		})
	})

	Convey("Given a failing OMDb stub", t, func() {
		srv, _ := stub(http.StatusInternalServerError, `oops`)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It reports the upstream error", func() {
			hits, err := client.Search(context.Background(), "Dune", "")
			So(err, ShouldNotBeNil)
			So(hits, ShouldBeEmpty)
		})
	})

	Convey("Given no configured key", t, func() {
		srv, query := stub(http.StatusOK, searchBody)
		Reset(srv.Close)
		client := New(Options{BaseURL: srv.URL})

		Convey("It substitutes the demo key", func() {
			_, _ = client.Search(context.Background(), "Dune", "")
			So(query.Get("apikey"), ShouldEqual, DemoKey)
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given an OMDb stub with a full record", t, func() {
		srv, query := stub(http.StatusOK, detailBody)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It requests the full plot by ID", func() {
			_, _ = client.Detail(context.Background(), "tt0468569")
			So(query.Get("i"), ShouldEqual, "tt0468569")
			So(query.Get("plot"), ShouldEqual, "full")
		})

		Convey("It maps the record", func() {
			got, err := client.Detail(context.Background(), "tt0468569")
			So(err, ShouldBeNil)
			d, ok := got.Get()
			So(ok, ShouldBeTrue)
			So(d.Title, ShouldEqual, "The Dark Knight")
			So(d.Rating, ShouldEqual, "9.0")
			So(d.Source, ShouldEqual, movie.OMDb)
			So(d.Director.MustGet(), ShouldEqual, "Christopher Nolan")
			So(d.IMDbID.MustGet(), ShouldEqual, "tt0468569")
		})

		Convey("Fields missing from the payload are absent", func() {
			got, _ := client.Detail(context.Background(), "tt0468569")
			d := got.MustGet()
			So(d.BoxOffice.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an OMDb stub answering Response False", t, func() {
		srv, _ := stub(http.StatusOK, `{"Response": "False", "Error": "Incorrect IMDb ID."}`)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It returns absent, not an error", func() {
			got, err := client.Detail(context.Background(), "tt0468569")
			So(err, ShouldBeNil)
			So(got.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an OMDb stub rejecting the key", t, func() {
		srv, _ := stub(http.StatusUnauthorized, `{"Response": "False", "Error": "Invalid API key!"}`)
		Reset(srv.Close)
		client := New(Options{APIKey: "bad", BaseURL: srv.URL})

		Convey("It treats the answer as no result", func() {
			got, err := client.Detail(context.Background(), "tt0468569")
			So(err, ShouldBeNil)
			So(got.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a stub returning malformed JSON", t, func() {
		srv, _ := stub(http.StatusOK, `{"Title": `)
		Reset(srv.Close)
		client := New(Options{APIKey: "key", BaseURL: srv.URL})

		Convey("It reports a decode error", func() {
			got, err := client.Detail(context.Background(), "tt0468569")
			So(err, ShouldNotBeNil)
			So(got.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Movie.Detail", t, func() {
		Convey("Keeps OMDb's own N/A values present", func() {
			m := &Movie{Title: "Obscure", Awards: movie.NotAvailable, BoxOffice: movie.NotAvailable}
			d := m.Detail()
			So(d.Awards.MustGet(), ShouldEqual, movie.NotAvailable)
			So(d.BoxOffice.MustGet(), ShouldEqual, movie.NotAvailable)
			So(d.Director.IsAbsent(), ShouldBeTrue)
		})

		Convey("Uses the genre string as-is", func() {
			m := &Movie{Genre: "Drama, Romance"}
			So(m.Detail().Genre, ShouldEqual, "Drama, Romance")
		})
	})

	Convey("redact hides the key", t, func() {
		u, _ := url.Parse("http://www.omdbapi.com/?apikey=secret&s=Dune")
		So(redact(u), ShouldNotContainSubstring, "secret")
	})
}
