// Package tmdb provides a client for the TMDb v3 REST API.
package tmdb

import (
	"strconv"
	"strings"

	"github.com/cinemcp/cinemcp/movie"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	// ImageBaseURL is the CDN prefix for relative image paths.
	ImageBaseURL = "https://image.tmdb.org/t/p/"
	// PosterSize is the image width segment used for posters.
	PosterSize = "w500"

	// castSize is how many credited actors make up the main cast.
	castSize = 5
)

// PosterURL turns a relative poster path into an absolute URL, or N/A when there is none.
func PosterURL(path string) string {
	if path == "" {
		return movie.NotAvailable
	}
	return ImageBaseURL + PosterSize + path
}

// Year extracts the year from a YYYY-MM-DD release date.
func Year(releaseDate string) string {
	year, _, _ := strings.Cut(releaseDate, "-")
	return year
}

// Hit maps a list entry onto the unified search record.
func (m *Movie) Hit() *movie.Hit {
	return &movie.Hit{
		Title:     m.Title,
		Year:      Year(m.ReleaseDate),
		ID:        strconv.Itoa(m.ID),
		MediaType: "movie",
		Poster:    PosterURL(m.PosterPath),
		Source:    movie.TMDb,
	}
}

// Detail maps the full record onto the unified detail record.
func (d *MovieDetails) Detail() *movie.Detail {
	credits := d.Credits
	if credits == nil {
		credits = &Credits{}
	}

	return &movie.Detail{
		Title:     d.Title,
		Year:      Year(d.ReleaseDate),
		Plot:      d.Overview,
		Genre:     strings.Join(lo.Map(d.Genres, func(g Genre, _ int) string { return g.Name }), ", "),
		Rating:    strconv.FormatFloat(d.VoteAverage, 'f', -1, 64),
		Poster:    PosterURL(d.PosterPath),
		Source:    movie.TMDb,
		Director:  mo.Some(director(credits.Crew)),
		Actors:    mo.Some(cast(credits.Cast)),
		Runtime:   mo.Some(runtime(d.Runtime)),
		Language:  mo.Some(d.OriginalLanguage),
		Country:   mo.Some(strings.Join(lo.Map(d.ProductionCountries, func(c Country, _ int) string { return c.Name }), ", ")),
		Awards:    mo.Some(movie.NotAvailable),
		BoxOffice: mo.Some(boxOffice(d.Revenue)),
		IMDbID:    mo.EmptyableToOption(d.IMDbID),
	}
}

// director is the first crew member credited as Director.
func director(crew []CrewMember) string {
	found, ok := lo.Find(crew, func(c CrewMember) bool {
		return c.Job == "Director"
	})
	if !ok || found.Name == "" {
		return movie.NotAvailable
	}
	return found.Name
}

// cast joins the names of the first credited actors.
func cast(members []CastMember) string {
	names := lo.Map(lo.Slice(members, 0, castSize), func(c CastMember, _ int) string {
		return c.Name
	})
	if joined := strings.Join(names, ", "); joined != "" {
		return joined
	}
	return movie.NotAvailable
}

func runtime(minutes int) string {
	if minutes == 0 {
		return movie.NotAvailable
	}
	return strconv.Itoa(minutes) + " min"
}

func boxOffice(revenue int64) string {
	if revenue == 0 {
		return movie.NotAvailable
	}
	return "$" + humanize.Comma(revenue)
}
