// Package tmdb provides a client for the TMDb v3 REST API.
package tmdb

// Movie is a list entry as returned by search, popular, trending and discover.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	OriginalLanguage string  `json:"original_language"`
}

// Page is the paginated list envelope.
type Page struct {
	Page         int      `json:"page"`
	Results      []*Movie `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is a genre reference on a full record.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is a production country on a full record.
type Country struct {
	ISO3166 string `json:"iso_3166_1"`
	Name    string `json:"name"`
}

// CastMember is a single credited actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a single crew entry.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits is the embedded credits sub-resource.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full record of GET /movie/{id} with credits appended.
type MovieDetails struct {
	Movie
	Budget              int64     `json:"budget"`
	Genres              []Genre   `json:"genres"`
	Homepage            string    `json:"homepage"`
	IMDbID              string    `json:"imdb_id"`
	ProductionCountries []Country `json:"production_countries"`
	Revenue             int64     `json:"revenue"`
	Runtime             int       `json:"runtime"`
	Status              string    `json:"status"`
	Tagline             string    `json:"tagline"`
	Credits             *Credits  `json:"credits"`
}
