// Package omdb provides a client for the OMDb REST API.
package omdb

import (
	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/mo"
)

// hit maps a search entry onto the unified search record.
func (s *searchItem) hit() *movie.Hit {
	return &movie.Hit{
		Title:     s.Title,
		Year:      s.Year,
		ID:        s.IMDbID,
		MediaType: s.Type,
		Poster:    s.Poster,
		Source:    movie.OMDb,
	}
}

// Detail maps the full record onto the unified detail record.
// Fields missing from the payload are None; OMDb's own "N/A" values are kept as-is.
func (m *Movie) Detail() *movie.Detail {
	return &movie.Detail{
		Title:     m.Title,
		Year:      m.Year,
		Plot:      m.Plot,
		Genre:     m.Genre,
		Rating:    m.IMDbRating,
		Poster:    m.Poster,
		Source:    movie.OMDb,
		Director:  mo.EmptyableToOption(m.Director),
		Actors:    mo.EmptyableToOption(m.Actors),
		Runtime:   mo.EmptyableToOption(m.Runtime),
		Language:  mo.EmptyableToOption(m.Language),
		Country:   mo.EmptyableToOption(m.Country),
		Awards:    mo.EmptyableToOption(m.Awards),
		BoxOffice: mo.EmptyableToOption(m.BoxOffice),
		IMDbID:    mo.EmptyableToOption(m.IMDbID),
	}
}
