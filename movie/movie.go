// Package movie defines the unified records produced from both metadata upstreams.
package movie

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
)

// NotAvailable is the in-band marker for a field the upstream did not supply.
// It is distinct from an absent optional field.
const NotAvailable = "N/A"

// Source identifies the upstream a record came from.
type Source string

const (
	// OMDb is upstream A, the title and IMDb-ID based API.
	OMDb Source = "omdb"
	// TMDb is upstream B, the discovery oriented API.
	TMDb Source = "tmdb"
)

// DefaultSource is used for detail lookups that name no source.
const DefaultSource = OMDb

// Sources lists every known source.
func Sources() []Source {
	return []Source{OMDb, TMDb}
}

// ParseSource resolves a source name. Empty input yields DefaultSource.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultSource, nil
	case OMDb:
		return OMDb, nil
	case TMDb:
		return TMDb, nil
	default:
		return "", fmt.Errorf("unknown source %q", s)
	}
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ValidYear reports whether year is empty or a 4-digit year.
func ValidYear(year string) bool {
	return year == "" || yearPattern.MatchString(year)
}

// Upper is the display form of the source name.
func (s Source) Upper() string {
	return strings.ToUpper(string(s))
}

// PageURL is the public web page of a movie on the site behind source.
func PageURL(id string, source Source) string {
	if source == TMDb {
		return "https://www.themoviedb.org/movie/" + id
	}
	return "https://www.imdb.com/title/" + id + "/"
}

// Hit is a lightweight search result.
// ID is only meaningful together with Source.
type Hit struct {
	Title     string `json:"title" jsonschema:"description=Movie title as reported by the source."`
	Year      string `json:"year" jsonschema:"description=Four digit release year or empty."`
	ID        string `json:"id" jsonschema:"description=Source specific identifier (IMDb ID for omdb, numeric ID for tmdb)."`
	MediaType string `json:"type" jsonschema:"description=Media type reported by the source."`
	Poster    string `json:"poster" jsonschema:"description=Absolute poster URL or N/A."`
	Source    Source `json:"source" jsonschema:"enum=omdb,enum=tmdb"`
}

// Detail is the full record of a single movie.
// Optional fields are None when the owning upstream does not guarantee them.
type Detail struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	Plot   string `json:"plot"`
	Genre  string `json:"genre" jsonschema:"description=Comma separated genre names."`
	Rating string `json:"rating" jsonschema:"description=IMDb rating out of 10 for omdb, vote average for tmdb."`
	Poster string `json:"poster"`
	Source Source `json:"source" jsonschema:"enum=omdb,enum=tmdb"`

	Director  mo.Option[string] `json:"director"`
	Actors    mo.Option[string] `json:"actors" jsonschema:"description=Comma separated names of the main cast."`
	Runtime   mo.Option[string] `json:"runtime"`
	Language  mo.Option[string] `json:"language"`
	Country   mo.Option[string] `json:"country"`
	Awards    mo.Option[string] `json:"awards"`
	BoxOffice mo.Option[string] `json:"boxOffice"`
	IMDbID    mo.Option[string] `json:"imdbId"`
}
