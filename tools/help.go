package tools

import (
	"strings"
	"text/template"

	"github.com/cinemcp/cinemcp/catalog"
	"github.com/cinemcp/cinemcp/icon"
	"github.com/samber/lo"
)

var helpTemplate = lo.Must(template.New("help").Funcs(template.FuncMap{
	"icon": icon.Prefix,
	"get":  icon.Get,
	"join": strings.Join,
}).Parse(`
{{ icon .Movie }}**Movie Search MCP Server**{{ with get .Movie }} {{ . }}{{ end }}

**Available tools:**

1. **search_movies** - Search movies by title
   - ` + "`title`" + `: Movie title (required)
   - ` + "`year`" + `: Movie year (optional)

2. **get_movie_details** - Get complete movie information
   - ` + "`id`" + `: Movie ID (IMDB ID or TMDb ID)
   - ` + "`source`" + `: 'omdb' or 'tmdb' (default: omdb)

3. **recommend_movies** - Get movie recommendations
   - ` + "`genre`" + `: Specific genre (optional)
   - Available genres: {{ join .Genres ", " }}

4. **popular_movies** - Get the most popular movies of the week

5. **movie_help** - Show this help

**APIs used:**
- {{ icon .Genre }}**OMDb API**: For detailed IMDB information
- {{ icon .Movie }}**TMDb API**: For advanced searches and recommendations

**Required configuration:**
- Environment variable ` + "`OMDB_API_KEY`" + ` (get at: http://www.omdbapi.com/apikey.aspx)
- Environment variable ` + "`TMDB_API_KEY`" + ` (get at: https://www.themoviedb.org/settings/api)

**Usage examples:**
- "Search for Batman movies"
- "Get details for movie tt0468569"
- "Recommend action movies"
- "What are the popular movies?"
`))

// Help renders the usage guide returned by the movie_help tool.
func Help() string {
	var b strings.Builder
	lo.Must0(helpTemplate.Execute(&b, struct {
		Movie, Genre icon.Icon
		Genres       []string
	}{
		Movie:  icon.Movie,
		Genre:  icon.Genre,
		Genres: catalog.GenreNames(),
	}))

	return b.String()
}
