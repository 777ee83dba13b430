// Package catalog aggregates both metadata upstreams into a single movie catalog.
package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Genre is an entry of the genre-name to TMDb genre-code table.
type Genre struct {
	Name string
	Code string
	// Alias entries duplicate the code of a canonical entry.
	Alias bool
}

var genres = []Genre{
	{Name: "action", Code: "28"},
	{Name: "adventure", Code: "12"},
	{Name: "animation", Code: "16"},
	{Name: "comedy", Code: "35"},
	{Name: "crime", Code: "80"},
	{Name: "documentary", Code: "99"},
	{Name: "drama", Code: "18"},
	{Name: "family", Code: "10751"},
	{Name: "fantasy", Code: "14"},
	{Name: "history", Code: "36"},
	{Name: "horror", Code: "27"},
	{Name: "music", Code: "10402"},
	{Name: "mystery", Code: "9648"},
	{Name: "romance", Code: "10749"},
	{Name: "science fiction", Code: "878"},
	{Name: "sci-fi", Code: "878", Alias: true},
	{Name: "thriller", Code: "53"},
	{Name: "war", Code: "10752"},
	{Name: "western", Code: "37"},
}

var genreCodes = lo.SliceToMap(genres, func(g Genre) (string, string) {
	return g.Name, g.Code
})

// GenreCode resolves a genre name, case-insensitively, to its TMDb code.
func GenreCode(name string) (string, bool) {
	code, ok := genreCodes[strings.ToLower(name)]
	return code, ok
}

// Genres returns the genre table in display order.
func Genres() []Genre {
	return lo.Map(genres, func(g Genre, _ int) Genre { return g })
}

// GenreNames returns the canonical genre names, without aliases.
func GenreNames() []string {
	return lo.FilterMap(genres, func(g Genre, _ int) (string, bool) {
		return g.Name, !g.Alias
	})
}
