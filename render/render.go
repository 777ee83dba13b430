// Package render turns catalog results into the human-readable text blocks returned by the tools.
package render

import (
	"fmt"
	"strings"

	"github.com/cinemcp/cinemcp/icon"
	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/mo"
)

const (
	detailsHint     = `Use "get_movie_details" with the ID for more information.`
	tmdbDetailsHint = `Use "get_movie_details" with the ID and source "tmdb" for more information.`
)

// Search renders the merged search result for a title.
func Search(title, year string, hits []*movie.Hit) string {
	if len(hits) == 0 {
		var from string
		if year != "" {
			from = " from year " + year
		}
		return fmt.Sprintf("No movies found with title \"%s\"%s.", title, from)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s**Found %d movies for \"%s\":**\n\n", icon.Prefix(icon.Movie), len(hits), title)
	for i, h := range hits {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, h.Title, h.Year)
		fmt.Fprintf(&b, "   - ID: %s\n", h.ID)
		fmt.Fprintf(&b, "   - Source: %s\n", h.Source.Upper())
		poster(&b, h.Poster)
		b.WriteString("\n")
	}
	hint(&b, detailsHint)

	return b.String()
}

// Detail renders a single record, or the not-found line when it is absent.
func Detail(id string, source movie.Source, detail mo.Option[*movie.Detail]) string {
	d, ok := detail.Get()
	if !ok || d == nil {
		return fmt.Sprintf("%sNo details found for movie with ID \"%s\" in %s.", icon.Prefix(icon.Fail), id, source.Upper())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s**%s** (%s)\n\n", icon.Prefix(icon.Movie), d.Title, d.Year)
	fmt.Fprintf(&b, "%s**Plot:** %s\n\n", icon.Prefix(icon.Plot), d.Plot)
	fmt.Fprintf(&b, "%s**Genre:** %s\n", icon.Prefix(icon.Genre), d.Genre)
	fmt.Fprintf(&b, "%s**Rating:** %s\n", icon.Prefix(icon.Rating), d.Rating)
	fmt.Fprintf(&b, "%s**Runtime:** %s\n", icon.Prefix(icon.Runtime), orNotAvailable(d.Runtime))

	field(&b, icon.Director, "Director", d.Director, true)
	field(&b, icon.Cast, "Main Cast", d.Actors, true)
	field(&b, icon.Language, "Language", d.Language, true)
	field(&b, icon.Country, "Country", d.Country, true)
	field(&b, icon.Awards, "Awards", d.Awards, false)
	field(&b, icon.BoxOffice, "Box Office", d.BoxOffice, false)
	field(&b, icon.Link, "IMDB ID", d.IMDbID, true)

	fmt.Fprintf(&b, "\n%s**Source:** %s", icon.Prefix(icon.Source), d.Source.Upper())
	if d.Poster != movie.NotAvailable && d.Poster != "" {
		fmt.Fprintf(&b, "\n\n%s**Poster:** %s", icon.Prefix(icon.Poster), d.Poster)
	}

	return b.String()
}

// Recommendations renders the genre (or popular) recommendation list.
func Recommendations(genre string, hits []*movie.Hit) string {
	if len(hits) == 0 {
		var suffix string
		if genre != "" {
			suffix = fmt.Sprintf(" for genre \"%s\"", genre)
		}
		return fmt.Sprintf("%sNo recommendations found%s.", icon.Prefix(icon.Fail), suffix)
	}

	heading := " (popular)"
	if genre != "" {
		heading = " for " + genre
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s**Movie recommendations%s:**\n\n", icon.Prefix(icon.Target), heading)
	tmdbList(&b, hits)

	return b.String()
}

// Popular renders this week's trending list.
func Popular(hits []*movie.Hit) string {
	if len(hits) == 0 {
		return icon.Prefix(icon.Fail) + "Could not get popular movies at this time."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s**Most popular movies this week:**\n\n", icon.Prefix(icon.Fire))
	tmdbList(&b, hits)

	return b.String()
}

// Failure renders the catch-all error line of a tool.
func Failure(action string, err error) string {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return fmt.Sprintf("%sError %s: %s", icon.Prefix(icon.Fail), action, msg)
}

func tmdbList(b *strings.Builder, hits []*movie.Hit) {
	for i, h := range hits {
		fmt.Fprintf(b, "%d. **%s** (%s)\n", i+1, h.Title, h.Year)
		fmt.Fprintf(b, "   - TMDb ID: %s\n", h.ID)
		poster(b, h.Poster)
		b.WriteString("\n")
	}
	hint(b, tmdbDetailsHint)
}

func poster(b *strings.Builder, url string) {
	if url != movie.NotAvailable && url != "" {
		fmt.Fprintf(b, "   - Poster: %s\n", url)
	}
}

func hint(b *strings.Builder, text string) {
	fmt.Fprintf(b, "\n%s*%s*", icon.Prefix(icon.Hint), text)
}

// field writes an optional line. Sentinel values are shown only when keepSentinel is set.
func field(b *strings.Builder, i icon.Icon, label string, value mo.Option[string], keepSentinel bool) {
	v, ok := value.Get()
	if !ok || v == "" {
		return
	}
	if v == movie.NotAvailable && !keepSentinel {
		return
	}
	fmt.Fprintf(b, "%s**%s:** %s\n", icon.Prefix(i), label, v)
}

func orNotAvailable(value mo.Option[string]) string {
	if v, ok := value.Get(); ok && v != "" {
		return v
	}
	return movie.NotAvailable
}
